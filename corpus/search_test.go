package corpus_test

import (
	"slices"
	"testing"

	"github.com/fwojciec/lawchat/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	idx, err := corpus.NewIndex(testTree())
	require.NoError(t, err)

	t.Run("empty term returns every article in canonical order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slices.Collect(idx.Articles()), idx.Search(""))
	})

	t.Run("blank term returns every article in canonical order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slices.Collect(idx.Articles()), idx.Search("  \t"))
	})

	t.Run("matches article number", func(t *testing.T) {
		t.Parallel()

		got := idx.Search("18")

		require.Len(t, got, 1)
		assert.Equal(t, 18, got[0].Number)
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{18}, numbers(idx.Search("EQUALITY")))
	})

	t.Run("ranks title matches above body matches", func(t *testing.T) {
		t.Parallel()

		// "citizen" is in the titles of 10 and 11 and only in the bodies of 18 and 20.
		assert.Equal(t, []int{10, 11, 18, 20}, numbers(idx.Search("citizen")))
	})

	t.Run("orders a class by ascending number", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{17, 18, 20}, numbers(idx.Search("right to")))
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		t.Parallel()

		got := idx.Search("parliament")

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
