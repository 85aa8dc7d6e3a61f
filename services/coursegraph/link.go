package coursegraph

import (
	"prereqmap/lib/textutil"

	"github.com/antzucaro/matchr"
)

// NameLink pairs a timetable offering name with the closest handbook
// title for the same course code. A low correlation usually means the
// handbook entry is stale or the course was renamed mid-year; the
// scrape command surfaces those so they can be eyeballed.
type NameLink struct {
	Code          string
	TimetableName string
	HandbookName  string
	Correlation   float64
}

// LinkNames compares timetable names against handbook titles keyed by
// course code. Codes present on only one side come back with a zero
// correlation and the missing name left blank.
func LinkNames(timetableNames, handbookNames map[string]string) []NameLink {
	var links []NameLink

	for code, ttName := range timetableNames {
		hbName, ok := handbookNames[code]
		if !ok {
			links = append(links, NameLink{
				Code:          code,
				TimetableName: ttName,
			})
			continue
		}

		correlation := 1.0
		left := textutil.NormalizeName(ttName)
		right := textutil.NormalizeName(hbName)
		if left != right {
			correlation = matchr.JaroWinkler(left, right, false)
		}

		links = append(links, NameLink{
			Code:          code,
			TimetableName: ttName,
			HandbookName:  hbName,
			Correlation:   correlation,
		})
	}

	for code, hbName := range handbookNames {
		if _, ok := timetableNames[code]; ok {
			continue
		}
		links = append(links, NameLink{
			Code:         code,
			HandbookName: hbName,
		})
	}

	return links
}

// timetable rows that carry a placeholder instead of a course name.
// normalized form, since MatchName strips case and whitespace.
var placeholderNames = []string{"seehandbook", "tobeadvised", "notoffered"}

// Suspicious filters links down to the ones worth a human look.
// Placeholder timetable names never line up with a handbook title, so
// they are dropped rather than reported every run.
func Suspicious(links []NameLink, threshold float64) []NameLink {
	var out []NameLink
	for _, link := range links {
		if link.Correlation >= threshold {
			continue
		}
		if textutil.MatchName(link.TimetableName, placeholderNames) {
			continue
		}
		out = append(out, link)
	}
	return out
}
