package coursegraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkNames(t *testing.T) {
	timetableNames := map[string]string{
		"COMP1511": "Programming Fundamentals",
		"COMP2521": "Data Structures & Algorithms",
		"COMP6841": "Extended Security Engineering",
	}
	handbookNames := map[string]string{
		"COMP1511": "Programming  Fundamentals",
		"COMP2521": "Data Structures and Algorithms",
		"COMP3900": "Computer Science Project",
	}

	links := LinkNames(timetableNames, handbookNames)
	byCode := map[string]NameLink{}
	for _, l := range links {
		byCode[l.Code] = l
	}
	require.Len(t, byCode, 4)

	// whitespace differences normalize away entirely
	require.Equal(t, 1.0, byCode["COMP1511"].Correlation)

	// "&" vs "and" is close but not identical
	comp2521 := byCode["COMP2521"]
	require.Less(t, comp2521.Correlation, 1.0)
	require.Greater(t, comp2521.Correlation, 0.8)

	// one-sided codes come back with zero correlation
	require.Equal(t, 0.0, byCode["COMP6841"].Correlation)
	require.Equal(t, "", byCode["COMP6841"].HandbookName)
	require.Equal(t, 0.0, byCode["COMP3900"].Correlation)
	require.Equal(t, "", byCode["COMP3900"].TimetableName)
}

func TestSuspicious(t *testing.T) {
	links := []NameLink{
		{Code: "COMP1511", Correlation: 1.0},
		{Code: "COMP2521", Correlation: 0.91},
		{Code: "COMP6841", Correlation: 0.0},
	}

	flagged := Suspicious(links, 0.95)
	require.Len(t, flagged, 2)
	require.Equal(t, "COMP2521", flagged[0].Code)
	require.Equal(t, "COMP6841", flagged[1].Code)
}

func TestSuspiciousSkipsPlaceholders(t *testing.T) {
	links := []NameLink{
		{Code: "COMP4961", TimetableName: "See Handbook", Correlation: 0.1},
		{Code: "COMP4962", TimetableName: "To be  advised", Correlation: 0.0},
		{Code: "COMP4910", TimetableName: "Thesis A", Correlation: 0.2},
	}

	flagged := Suspicious(links, 0.95)
	require.Len(t, flagged, 1)
	require.Equal(t, "COMP4910", flagged[0].Code)
}
