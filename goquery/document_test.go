package goquery_test

import (
	"testing"

	"github.com/fwojciec/serprank/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses fragments without failing", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse("<li>unclosed")
		require.NoError(t, err)

		nodes := doc.Select("li")
		require.Len(t, nodes, 1)
		assert.Equal(t, "unclosed", nodes[0].Text())
	})
}

func TestDocument_Select(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<ul class="lst">
	<li class="bx"><a class="tit" href="https://a.example/1">First</a></li>
	<li class="bx"><a class="tit" href="https://a.example/2">Second</a><span class="ad">광고</span></li>
</ul>
</body></html>`

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		items := doc.Select("ul.lst > li.bx")
		require.Len(t, items, 2)
		assert.Equal(t, "First", items[0].Select("a.tit")[0].Text())
		assert.Equal(t, "Second", items[1].Select("a.tit")[0].Text())
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		assert.Nil(t, doc.Select("section.missing"))
	})

	t.Run("scopes nested selection to the node", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		items := doc.Select("li.bx")
		require.Len(t, items, 2)
		assert.Empty(t, items[0].Select(".ad"))
		assert.Len(t, items[1].Select(".ad"), 1)
	})
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<a class="tit" href="https://a.example/1">x</a><a class="bare">y</a>`)
	require.NoError(t, err)

	assert.Equal(t, "https://a.example/1", doc.Select("a.tit")[0].Attr("href"))
	assert.Empty(t, doc.Select("a.bare")[0].Attr("href"))
}

func TestNode_Contains(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<ul><li id="a"><ul><li id="b"></li></ul></li><li id="c"></li></ul>`)
	require.NoError(t, err)

	a, b, c := doc.Select("#a")[0], doc.Select("#b")[0], doc.Select("#c")[0]

	assert.True(t, a.Contains(b))
	assert.False(t, b.Contains(a))
	assert.False(t, a.Contains(c))
	assert.False(t, a.Contains(a))
}
