package handbook

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// the handbook is a javascript app; the page data sits in a single
// json blob inside a script tag rather than in the rendered markup
const pageDataSelector = "script#page-data"

type pageData struct {
	Course  coursePayload  `json:"course"`
	Program programPayload `json:"program"`
}

type coursePayload struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	StudyLevel     string `json:"study_level"`
	EnrolmentRules []struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"enrolment_rules"`
}

type programPayload struct {
	Code      string          `json:"code"`
	Title     string          `json:"title"`
	Structure json.RawMessage `json:"structure"`
}

func extractPageData(ctx context.Context, code string, body []byte) pageData {
	var data pageData

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		slog.WarnContext(ctx, "failed to parse page html", "code", code, "err", err)
		return data
	}

	blob := doc.Find(pageDataSelector).Text()
	if blob == "" {
		slog.WarnContext(ctx, "page data blob is missing", "code", code)
		return data
	}

	err = json.Unmarshal([]byte(blob), &data)
	if err != nil {
		// the handbook occasionally reshuffles its payload; degrade to
		// an empty entry instead of failing the whole scrape
		slog.WarnContext(ctx, "page data blob has unexpected shape", "code", code, "err", err)
		return pageData{}
	}

	return data
}

func parseCoursePage(ctx context.Context, code string, body []byte) Course {
	payload := extractPageData(ctx, code, body).Course

	course := Course{
		Code:         code,
		Name:         payload.Title,
		Postgraduate: strings.EqualFold(payload.StudyLevel, "postgraduate"),
	}
	if payload.Code != "" && payload.Code != code {
		slog.WarnContext(
			ctx, "course page reports a different code",
			"requested", code, "reported", payload.Code,
		)
	}

	for _, rule := range payload.EnrolmentRules {
		codes := ExtractCodes(rule.Description)
		// a rule description sometimes restates the course itself
		codes = remove(codes, code)
		if len(codes) == 0 {
			continue
		}

		switch ClassifyRule(rule.Type, rule.Description) {
		case RulePrerequisite:
			course.Prerequisites = appendMissing(course.Prerequisites, codes...)
		case RuleCorequisite:
			course.Corequisites = appendMissing(course.Corequisites, codes...)
		case RuleExclusion:
			course.Exclusions = appendMissing(course.Exclusions, codes...)
		default:
			slog.WarnContext(
				ctx, "unrecognized enrolment rule",
				"code", code, "type", rule.Type, "description", rule.Description,
			)
		}
	}

	return course
}

func parseProgramPage(ctx context.Context, code string, body []byte) Program {
	payload := extractPageData(ctx, code, body).Program

	// the structure payload nests sections arbitrarily deep, but all we
	// want from it is course codes, so it is scanned as raw text
	codes := ExtractCodes(string(payload.Structure))

	return Program{
		Code:    code,
		Name:    payload.Title,
		Courses: codes,
	}
}

func appendMissing(list []string, codes ...string) []string {
	for _, code := range codes {
		seen := false
		for _, existing := range list {
			if existing == code {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, code)
		}
	}
	return list
}

func remove(list []string, code string) []string {
	out := list[:0]
	for _, c := range list {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}
