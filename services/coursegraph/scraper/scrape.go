package scraper

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"prereqmap/lib/scrapers/handbook"
	"prereqmap/lib/scrapers/timetable"
	"prereqmap/services/coursegraph/db"

	"github.com/mazen160/go-random"
)

type Options struct {
	School string
	Year   int
	Campus string
	// program codes to pull course membership for, may be empty
	Programs []string
}

type scraper struct {
	handbook  handbook.Client
	timetable timetable.Client
	qry       *db.Queries
	opts      Options
	wg        *sync.WaitGroup
}

// the handbook doesn't deserve a hammering just because its pages
// aren't cached yet; every worker sleeps a random slice of this before
// its first request
const maxJitterMs = 400

func (s scraper) jitter() {
	ms, err := random.IntRange(0, maxJitterMs)
	if err != nil {
		ms = maxJitterMs / 2
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (s scraper) scrapeCourse(ctx context.Context, offering timetable.Offering) {
	defer s.wg.Done()
	s.jitter()

	slog.DebugContext(ctx, "scraping course", "code", offering.Code, "name", offering.Name)

	course, err := s.handbook.Course(ctx, offering.Code, s.opts.Year)
	if err != nil {
		slog.WarnContext(ctx, "failed to get handbook entry", "code", offering.Code, "err", err)
		return
	}

	name := course.Name
	if name == "" {
		// degraded handbook entries still keep their timetable name
		name = offering.Name
	}

	postgraduate := int64(0)
	if course.Postgraduate {
		postgraduate = 1
	}
	err = s.qry.NoteCourse(ctx, db.NoteCourseParams{
		Code:         offering.Code,
		Name:         name,
		Postgraduate: postgraduate,
		School:       s.opts.School,
		Campus:       offering.Campus,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to note course", "code", offering.Code, "err", err)
		return
	}

	s.noteRelations(ctx, offering.Code, course.Prerequisites, db.RELATION_PREREQUISITE)
	s.noteRelations(ctx, offering.Code, course.Corequisites, db.RELATION_COREQUISITE)
	s.noteRelations(ctx, offering.Code, course.Exclusions, db.RELATION_EXCLUSION)
}

func (s scraper) noteRelations(ctx context.Context, code string, related []string, kind db.RelationKind) {
	for _, other := range related {
		err := s.qry.NoteRelation(ctx, db.NoteRelationParams{
			CourseCode:  code,
			RelatedCode: other,
			Kind:        int64(kind),
		})
		if err != nil {
			slog.WarnContext(
				ctx, "failed to note relation",
				"code", code, "related", other, "kind", kind.String(), "err", err,
			)
		}
	}
}

func (s scraper) scrapeProgram(ctx context.Context, code string) {
	defer s.wg.Done()
	s.jitter()

	slog.DebugContext(ctx, "scraping program", "code", code)

	program, err := s.handbook.Program(ctx, code, s.opts.Year)
	if err != nil {
		slog.WarnContext(ctx, "failed to get program entry", "code", code, "err", err)
		return
	}

	err = s.qry.NoteProgram(ctx, db.NoteProgramParams{
		Code: program.Code,
		Name: program.Name,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to note program", "code", code, "err", err)
		return
	}

	for _, course := range program.Courses {
		err := s.qry.NoteProgramCourse(ctx, db.NoteProgramCourseParams{
			ProgramCode: program.Code,
			CourseCode:  course,
		})
		if err != nil {
			slog.WarnContext(
				ctx, "failed to note program course",
				"program", code, "course", course, "err", err,
			)
		}
	}
}

// Scrape replaces the stored snapshot for one school with a fresh
// walk of the timetable and handbook. Everything happens in a single
// transaction so a half-finished scrape never clobbers the previous
// snapshot.
func Scrape(
	ctx context.Context,
	out *sql.DB,
	hb handbook.Client,
	tt timetable.Client,
	opts Options,
) error {
	qry := db.New(out)
	tx, err := out.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	txqry := qry.WithTx(tx)

	err = txqry.DeleteAllRelations(ctx)
	if err != nil {
		return err
	}
	err = txqry.DeleteAllProgramCourses(ctx)
	if err != nil {
		return err
	}
	err = txqry.DeleteAllPrograms(ctx)
	if err != nil {
		return err
	}
	err = txqry.DeleteAllCourses(ctx)
	if err != nil {
		return err
	}

	offerings, err := tt.Courses(ctx, opts.School, opts.Year, opts.Campus)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "found offerings", "school", opts.School, "count", len(offerings))

	s := scraper{
		handbook:  hb,
		timetable: tt,
		qry:       txqry,
		opts:      opts,
		wg:        &sync.WaitGroup{},
	}
	for _, offering := range offerings {
		s.wg.Add(1)
		go s.scrapeCourse(ctx, offering)
	}
	for _, program := range opts.Programs {
		s.wg.Add(1)
		go s.scrapeProgram(ctx, program)
	}
	s.wg.Wait()

	return tx.Commit()
}
