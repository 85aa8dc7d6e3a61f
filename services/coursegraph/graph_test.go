package coursegraph

import (
	"bytes"
	"strings"
	"testing"

	"prereqmap/services/coursegraph/db"

	"github.com/stretchr/testify/require"
)

func relation(course, related string, kind db.RelationKind) db.CourseRelation {
	return db.CourseRelation{
		CourseCode:  course,
		RelatedCode: related,
		Kind:        int64(kind),
	}
}

func TestBuildDeduplicatesEdges(t *testing.T) {
	relations := []db.CourseRelation{
		relation("COMP2521", "COMP1511", db.RELATION_PREREQUISITE),
		// the same pair appearing from both ends must stay one edge
		relation("COMP1511", "COMP2521", db.RELATION_PREREQUISITE),
		relation("COMP3121", "COMP2521", db.RELATION_PREREQUISITE),
		// self references never become loops
		relation("COMP3121", "COMP3121", db.RELATION_PREREQUISITE),
	}

	g := Build(relations)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestBuildFiltersKinds(t *testing.T) {
	relations := []db.CourseRelation{
		relation("COMP2521", "COMP1511", db.RELATION_PREREQUISITE),
		relation("COMP2521", "COMP1927", db.RELATION_EXCLUSION),
	}

	g := Build(relations, db.RELATION_PREREQUISITE)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestWriteDOT(t *testing.T) {
	relations := []db.CourseRelation{
		relation("COMP2521", "COMP1511", db.RELATION_PREREQUISITE),
	}

	var buf bytes.Buffer
	err := Build(relations).WriteDOT(&buf, "prereqs")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "graph prereqs")
	require.Contains(t, out, "COMP1511")
	require.Contains(t, out, "COMP2521")
	// undirected edges use --, not ->
	require.Contains(t, out, "--")
	require.NotContains(t, out, "->")
}

func TestSummary(t *testing.T) {
	relations := []db.CourseRelation{
		relation("COMP2521", "COMP1511", db.RELATION_PREREQUISITE),
		relation("COMP3121", "COMP2521", db.RELATION_PREREQUISITE),
		relation("MATH1241", "MATH1141", db.RELATION_PREREQUISITE),
	}

	out := Summary(relations)
	require.True(t, strings.Contains(out, "COMP"))
	require.True(t, strings.Contains(out, "MATH"))
	require.True(t, strings.Contains(out, "3"))
}
