package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "datastructuresandalgorithms", NormalizeName("  Data Structures\nand Algorithms\t"))
	require.Equal(t, "securityengineering", NormalizeName("Security  Engineering"))
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(
		t,
		"Prerequisite: COMP1511 or DPST1091",
		CollapseWhitespace("Prerequisite:   COMP1511 \n or\tDPST1091 "),
	)
}

func TestMatchName(t *testing.T) {
	matchers := []string{"computerscience", "softwareengineering"}
	require.True(t, MatchName("Computer Science", matchers))
	require.True(t, MatchName("software engineering (honours)", matchers))
	require.False(t, MatchName("Bioinformatics", matchers))
}
