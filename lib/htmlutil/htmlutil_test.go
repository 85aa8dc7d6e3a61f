package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const anchorFixture = `
<html><body>
	<a href="/courses/2025/COMP1511">COMP1511
		<span>Programming   Fundamentals</span></a>
	<a href="/courses/2025/COMP2521">COMP2521 Data Structures</a>
	<a>no href at all</a>
</body></html>`

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(anchorFixture))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Len(t, anchors, 3)

	require.Equal(t, "COMP1511 Programming Fundamentals", anchors[0].Name)
	require.Equal(t, "/courses/2025/COMP1511", anchors[0].Href)
	require.Equal(t, "COMP2521 Data Structures", anchors[1].Name)
	require.Equal(t, "", anchors[2].Href)
}
