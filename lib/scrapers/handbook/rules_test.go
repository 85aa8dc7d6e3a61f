package handbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCodes(t *testing.T) {
	testCases := []struct {
		text     string
		expected []string
	}{
		{
			text:     "Prerequisite: COMP1511 or DPST1091 or COMP1911",
			expected: []string{"COMP1511", "DPST1091", "COMP1911"},
		},
		{
			// duplicates collapse, order of first appearance wins
			text:     "COMP2521 and (COMP1531 or COMP2521)",
			expected: []string{"COMP2521", "COMP1531"},
		},
		{
			text:     "Completion of 102 units of credit",
			expected: nil,
		},
		{
			// lowercase and partial codes don't count
			text:     "comp1511, MATH131 and COMP151",
			expected: nil,
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ExtractCodes(test.text))
	}
}

func TestClassifyRule(t *testing.T) {
	testCases := []struct {
		ruleType    string
		description string
		expected    RuleKind
	}{
		{"Prerequisite", "COMP1511 or DPST1091", RulePrerequisite},
		{"Pre-requisite", "", RulePrerequisite},
		{"Co-requisite", "MATH1131", RuleCorequisite},
		{"Excluded Courses", "COMP1911", RuleExclusion},
		{"Equivalent Courses", "DPST1091", RuleExclusion},
		// blank type falls back to the description text
		{"", "Prerequisite: COMP2521 and COMP1531", RulePrerequisite},
		{"", "Pre-requisite or co-requisite: MATH1081", RuleCorequisite},
		{"", "Excludes COMP9021", RuleExclusion},
		{"", "Must have completed 96 UOC", RuleUnknown},
	}

	for _, test := range testCases {
		got := ClassifyRule(test.ruleType, test.description)
		require.Equal(t, test.expected, got, "type=%q desc=%q", test.ruleType, test.description)
	}
}
