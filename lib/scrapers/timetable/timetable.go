package timetable

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"prereqmap/lib/restyutil"
	"prereqmap/lib/textutil"
	"prereqmap/lib/webcache"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("prereqmap.lib.scrapers.timetable")

var instrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}

const DefaultBaseUrl = "https://timetable.unsw.edu.au"

var courseCodeRegex = regexp.MustCompile(`^[A-Z]{4}[0-9]{4}$`)

// Offering is one row of a subject area's timetable listing: a course
// that actually runs this year, as opposed to merely existing in the
// handbook.
type Offering struct {
	Code   string
	Name   string
	Campus string
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
	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	return Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		fetcher: webcache.NewFetcher(opts.Cache, client),
	}
}

// Courses lists the offerings for one school and campus. The page is
// the classic server-rendered timetable: one big table whose data rows
// hold a course code anchor and a name cell, interleaved with spacer
// and heading rows that carry no code.
func (c Client) Courses(ctx context.Context, school string, year int, campus string) ([]Offering, error) {
	ctx, span := tracer.Start(ctx, "Courses")
	defer span.End()

	school = strings.ToUpper(strings.TrimSpace(school))
	campus = strings.ToUpper(strings.TrimSpace(campus))
	span.SetAttributes(
		attribute.String("school", school),
		attribute.String("campus", campus),
		attribute.Int("year", year),
	)

	url := fmt.Sprintf("%s/%d/%s%s.html", c.baseUrl, year, school, campus)
	body, err := c.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	var offerings []Offering
	seen := map[string]struct{}{}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		// spacer and section-heading rows have no code/name pair
		if cells.Length() < 2 {
			return
		}

		code := strings.TrimSpace(cells.Eq(0).Text())
		if !courseCodeRegex.MatchString(code) {
			return
		}
		name := textutil.CollapseWhitespace(cells.Eq(1).Text())

		// summer and multi-term courses repeat their row per term
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}

		offerings = append(offerings, Offering{
			Code:   code,
			Name:   name,
			Campus: campus,
		})
	})

	span.SetAttributes(attribute.Int("count", len(offerings)))
	return offerings, nil
}
