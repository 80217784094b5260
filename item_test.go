package serprank_test

import (
	"testing"

	"github.com/fwojciec/serprank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []serprank.SectionKind{
		serprank.BlogPopular, serprank.BlogGeneral, serprank.Web, serprank.Place,
	}, serprank.SectionKinds())
}

func TestParseSectionKind(t *testing.T) {
	t.Parallel()

	t.Run("accepts labels case-insensitively", func(t *testing.T) {
		t.Parallel()

		k, err := serprank.ParseSectionKind(" Place ")
		require.NoError(t, err)
		assert.Equal(t, serprank.Place, k)
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		t.Parallel()

		_, err := serprank.ParseSectionKind("news")
		require.Error(t, err)
		assert.Equal(t, serprank.EINVALID, serprank.ErrorCode(err))
	})
}

func TestSectionKind_Vertical(t *testing.T) {
	t.Parallel()

	assert.Equal(t, serprank.VerticalBlog, serprank.BlogPopular.Vertical())
	assert.Equal(t, serprank.VerticalBlog, serprank.BlogGeneral.Vertical())
	assert.Equal(t, serprank.VerticalWeb, serprank.Web.Vertical())
	assert.Equal(t, serprank.VerticalPlace, serprank.Place.Vertical())
}

func TestEntity_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		e := &serprank.Entity{Name: "  ", Keywords: []string{"k"}}
		assert.Equal(t, serprank.EINVALID, serprank.ErrorCode(e.Validate()))
	})

	t.Run("requires a non-blank keyword", func(t *testing.T) {
		t.Parallel()

		e := &serprank.Entity{Name: "미소치과", Keywords: []string{" ", ""}}
		assert.Equal(t, serprank.EINVALID, serprank.ErrorCode(e.Validate()))
	})

	t.Run("accepts a named entity with keywords", func(t *testing.T) {
		t.Parallel()

		e := &serprank.Entity{Name: "미소치과", Keywords: []string{"강남치과"}}
		assert.NoError(t, e.Validate())
	})
}

func TestCleanKeywords(t *testing.T) {
	t.Parallel()

	got := serprank.CleanKeywords([]string{" 강남치과", "", "미소치과", "강남치과 ", "  "})

	assert.Equal(t, []string{"강남치과", "미소치과"}, got)
}
