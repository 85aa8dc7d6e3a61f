package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"prereqmap/lib/scrapers/handbook"
	"prereqmap/lib/scrapers/timetable"
	"prereqmap/lib/testutil"
	"prereqmap/lib/webcache"
	"prereqmap/services/coursegraph/db"

	"github.com/stretchr/testify/require"
)

const timetableFixture = `<html><body><table>
	<tr><td colspan="3">Undergraduate</td></tr>
	<tr>
		<td><a href="COMP1511.html">COMP1511</a></td>
		<td>Programming Fundamentals</td>
		<td>T1 T2 T3</td>
	</tr>
	<tr>
		<td><a href="COMP2521.html">COMP2521</a></td>
		<td>Data Structures and Algorithms</td>
		<td>T1 T2 T3</td>
	</tr>
</table></body></html>`

func coursePage(code, title, rules string) string {
	return fmt.Sprintf(`<html><body>
	<script id="page-data" type="application/json">
	{"course": {"code": %q, "title": %q, "study_level": "Undergraduate",
		"enrolment_rules": [%s]}}
	</script></body></html>`, code, title, rules)
}

func TestScrape(t *testing.T) {
	handbookServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/undergraduate/courses/2025/COMP1511":
			fmt.Fprint(w, coursePage("COMP1511", "Programming Fundamentals", ""))
		case "/undergraduate/courses/2025/COMP2521":
			fmt.Fprint(w, coursePage(
				"COMP2521", "Data Structures and Algorithms",
				`{"type": "Prerequisite", "description": "COMP1511 or DPST1091"},
				 {"type": "Excluded Courses", "description": "COMP1927"}`,
			))
		default:
			http.NotFound(w, r)
		}
	}))
	defer handbookServer.Close()

	timetableServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2025/COMPKENS.html" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, timetableFixture)
	}))
	defer timetableServer.Close()

	cacheDir := t.TempDir()
	hbCache, err := webcache.New(cacheDir + "/handbook")
	require.NoError(t, err)
	ttCache, err := webcache.New(cacheDir + "/timetable")
	require.NoError(t, err)

	hb := handbook.NewClient(handbook.ClientOptions{
		BaseUrl: handbookServer.URL,
		Cache:   hbCache,
	})
	tt := timetable.NewClient(timetable.ClientOptions{
		BaseUrl: timetableServer.URL,
		Cache:   ttCache,
	})

	out := testutil.SetupDB(t, db.Schema)

	err = Scrape(context.Background(), out, hb, tt, Options{
		School: "COMP",
		Year:   2025,
		Campus: "KENS",
	})
	require.NoError(t, err)

	qry := db.New(out)

	courses, err := qry.ListCourses(context.Background())
	require.NoError(t, err)
	require.Equal(t, []db.Course{
		{Code: "COMP1511", Name: "Programming Fundamentals", School: "COMP", Campus: "KENS"},
		{Code: "COMP2521", Name: "Data Structures and Algorithms", School: "COMP", Campus: "KENS"},
	}, courses)

	relations, err := qry.ListRelations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []db.CourseRelation{
		{CourseCode: "COMP2521", RelatedCode: "COMP1511", Kind: int64(db.RELATION_PREREQUISITE)},
		{CourseCode: "COMP2521", RelatedCode: "COMP1927", Kind: int64(db.RELATION_EXCLUSION)},
		{CourseCode: "COMP2521", RelatedCode: "DPST1091", Kind: int64(db.RELATION_PREREQUISITE)},
	}, relations)
}

func TestScrapeReplacesPreviousSnapshot(t *testing.T) {
	out := testutil.SetupDB(t, db.Schema)
	qry := db.New(out)

	// seed a stale snapshot
	err := qry.NoteCourse(context.Background(), db.NoteCourseParams{
		Code: "COMP0000", Name: "Retired Course", School: "COMP", Campus: "KENS",
	})
	require.NoError(t, err)

	handbookServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/undergraduate/courses/2025/COMP1511" {
			fmt.Fprint(w, coursePage("COMP1511", "Programming Fundamentals", ""))
			return
		}
		http.NotFound(w, r)
	}))
	defer handbookServer.Close()

	timetableServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<table><tr>
			<td>COMP1511</td><td>Programming Fundamentals</td><td>T1</td>
		</tr></table>`)
	}))
	defer timetableServer.Close()

	hbCache, err := webcache.New(t.TempDir())
	require.NoError(t, err)
	ttCache, err := webcache.New(t.TempDir())
	require.NoError(t, err)

	err = Scrape(
		context.Background(), out,
		handbook.NewClient(handbook.ClientOptions{BaseUrl: handbookServer.URL, Cache: hbCache}),
		timetable.NewClient(timetable.ClientOptions{BaseUrl: timetableServer.URL, Cache: ttCache}),
		Options{School: "COMP", Year: 2025, Campus: "KENS"},
	)
	require.NoError(t, err)

	courses, err := qry.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "COMP1511", courses[0].Code)
}
