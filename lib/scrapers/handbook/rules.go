package handbook

import (
	"regexp"
	"strings"
)

// course codes look like COMP1511: a four letter subject area followed
// by a four digit catalogue number
var courseCodeRegex = regexp.MustCompile(`\b[A-Z]{4}[0-9]{4}\b`)

// ExtractCodes regex-matches course codes out of free text, returning
// them deduplicated in order of first appearance. Enrolment rules are
// prose ("COMP1511 or DPST1091, and 102 units of credit"), so this is
// deliberately dumb: no attempt is made to understand and/or grouping.
func ExtractCodes(text string) []string {
	matches := courseCodeRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var codes []string
	seen := map[string]struct{}{}
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		codes = append(codes, m)
	}
	return codes
}

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RulePrerequisite
	RuleCorequisite
	RuleExclusion
)

func (k RuleKind) String() string {
	switch k {
	case RulePrerequisite:
		return "prerequisite"
	case RuleCorequisite:
		return "corequisite"
	case RuleExclusion:
		return "exclusion"
	}
	return "unknown"
}

// ClassifyRule buckets an enrolment rule by its declared type, falling
// back to keyword-sniffing the description since older catalogue years
// leave the type blank. Corequisite has to be checked before
// prerequisite: the handbook spells it "co-requisite" but some
// descriptions read "pre-requisite or co-requisite".
func ClassifyRule(ruleType, description string) RuleKind {
	t := strings.ToLower(strings.TrimSpace(ruleType))
	switch {
	case strings.Contains(t, "coreq") || strings.Contains(t, "co-req"):
		return RuleCorequisite
	case strings.Contains(t, "prereq") || strings.Contains(t, "pre-req"):
		return RulePrerequisite
	case strings.Contains(t, "excl") || strings.Contains(t, "equivalent"):
		return RuleExclusion
	}

	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "coreq") || strings.Contains(d, "co-req"):
		return RuleCorequisite
	case strings.Contains(d, "prereq") || strings.Contains(d, "pre-req"):
		return RulePrerequisite
	case strings.Contains(d, "excl") || strings.Contains(d, "equivalent"):
		return RuleExclusion
	}

	return RuleUnknown
}
