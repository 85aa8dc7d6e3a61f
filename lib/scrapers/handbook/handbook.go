package handbook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"prereqmap/lib/restyutil"
	"prereqmap/lib/webcache"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://www.handbook.unsw.edu.au"

// Course is one handbook entry with the codes regexed out of its
// enrolment rules. The related-course lists hold raw codes, not Course
// values: a rule can reference a course that has no handbook page of
// its own (discontinued or cross-institution), so resolving them is
// the caller's problem.
type Course struct {
	Code          string
	Name          string
	Postgraduate  bool
	Prerequisites []string
	Corequisites  []string
	Exclusions    []string
}

// Program is a degree program and the courses its structure names.
type Program struct {
	Code    string
	Name    string
	Courses []string
}

type Client struct {
	baseUrl string
	fetcher *webcache.Fetcher
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	Cache   webcache.Cache
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	// the handbook sits behind cloudflare which 403s the default
	// go user agent
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	return Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		fetcher: webcache.NewFetcher(opts.Cache, client),
	}
}

func (c Client) courseUrl(level, code string, year int) string {
	return fmt.Sprintf("%s/%s/courses/%d/%s", c.baseUrl, level, year, code)
}

func (c Client) programUrl(level, code string, year int) string {
	return fmt.Sprintf("%s/%s/programs/%d/%s", c.baseUrl, level, year, code)
}

// Course fetches one course page. Undergraduate and postgraduate
// entries live under different path prefixes, so the undergraduate one
// is tried first and the postgraduate one on failure.
func (c Client) Course(ctx context.Context, code string, year int) (Course, error) {
	ctx, span := tracer.Start(ctx, "Course")
	defer span.End()

	body, err := c.fetcher.Get(ctx, c.courseUrl("undergraduate", code, year))
	if err == nil {
		return parseCoursePage(ctx, code, body), nil
	}

	slog.DebugContext(
		ctx, "no undergraduate entry, trying postgraduate",
		"code", code, "err", err,
	)

	body, pgErr := c.fetcher.Get(ctx, c.courseUrl("postgraduate", code, year))
	if pgErr != nil {
		return Course{}, fmt.Errorf("course %s not found in %d handbook: %w", code, year, pgErr)
	}
	course := parseCoursePage(ctx, code, body)
	course.Postgraduate = true
	return course, nil
}

// Program fetches one program page and collects every course code its
// curriculum structure references.
func (c Client) Program(ctx context.Context, code string, year int) (Program, error) {
	ctx, span := tracer.Start(ctx, "Program")
	defer span.End()

	body, err := c.fetcher.Get(ctx, c.programUrl("undergraduate", code, year))
	if err != nil {
		var pgErr error
		body, pgErr = c.fetcher.Get(ctx, c.programUrl("postgraduate", code, year))
		if pgErr != nil {
			return Program{}, fmt.Errorf("program %s not found in %d handbook: %w", code, year, pgErr)
		}
	}

	return parseProgramPage(ctx, code, body), nil
}
