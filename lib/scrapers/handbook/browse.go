package handbook

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"prereqmap/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// SubjectArea is one browse-page entry, e.g. COMP / "Computer Science".
type SubjectArea struct {
	Code string
	Name string
}

// CourseRef is a course anchor on a subject-area page. Unlike a full
// Course it carries no rules: it only says the course exists in the
// catalogue year.
type CourseRef struct {
	Code string
	Name string
}

// anchored variants: hrefs are matched segment-for-segment, not
// substring-matched like rule prose
var subjectAreaSegmentRegex = regexp.MustCompile(`^[A-Z]{4}$`)
var courseSegmentRegex = regexp.MustCompile(`^[A-Z]{4}[0-9]{4}$`)

func (c Client) browseUrl(year int) string {
	return fmt.Sprintf("%s/browse/courses/%d", c.baseUrl, year)
}

func (c Client) subjectAreaUrl(school string, year int) string {
	return fmt.Sprintf("%s/browse/courses/%d/%s", c.baseUrl, year, school)
}

// SubjectAreas scrapes the browse page for subject-area links. Every
// anchor whose final path segment looks like a subject area counts;
// nav links and course anchors fall through the filter.
func (c Client) SubjectAreas(ctx context.Context, year int) ([]SubjectArea, error) {
	ctx, span := tracer.Start(ctx, "SubjectAreas")
	defer span.End()

	body, err := c.fetcher.Get(ctx, c.browseUrl(year))
	if err != nil {
		return nil, fmt.Errorf("browse page for %d: %w", year, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var areas []SubjectArea
	seen := map[string]struct{}{}
	for _, anchor := range htmlutil.GetAnchors(ctx, doc.Find("a")) {
		code := lastPathSegment(anchor.Href)
		if !subjectAreaSegmentRegex.MatchString(code) {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		areas = append(areas, SubjectArea{Code: code, Name: anchor.Name})
	}
	return areas, nil
}

// Courses scrapes one subject-area page for its course anchors. The
// anchor text usually leads with the code ("COMP1511 Programming
// Fundamentals"), which gets trimmed off the name.
func (c Client) Courses(ctx context.Context, school string, year int) ([]CourseRef, error) {
	ctx, span := tracer.Start(ctx, "Courses")
	defer span.End()

	school = strings.ToUpper(school)
	body, err := c.fetcher.Get(ctx, c.subjectAreaUrl(school, year))
	if err != nil {
		return nil, fmt.Errorf("subject area %s in %d: %w", school, year, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var courses []CourseRef
	seen := map[string]struct{}{}
	for _, anchor := range htmlutil.GetAnchors(ctx, doc.Find("a")) {
		code := lastPathSegment(anchor.Href)
		if !courseSegmentRegex.MatchString(code) {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		name := strings.TrimSpace(strings.TrimPrefix(anchor.Name, code))
		courses = append(courses, CourseRef{Code: code, Name: name})
	}
	return courses, nil
}

func lastPathSegment(href string) string {
	link, err := url.Parse(href)
	if err != nil {
		return ""
	}
	path := strings.TrimRight(link.Path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
