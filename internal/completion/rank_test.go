package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTiers(t *testing.T) {
	candidates := []Item{
		{Label: "toad"},     // fuzzy subsequence of "tod"
		{Label: "autodial"}, // contains
		{Label: "today"},    // prefix
	}

	items := rank(candidates, "tod")
	require.Len(t, items, 3)
	assert.Equal(t, "today", items[0].Label)
	assert.Equal(t, "autodial", items[1].Label)
	assert.Equal(t, "toad", items[2].Label)
}

func TestRankExactBeatsPrefix(t *testing.T) {
	candidates := []Item{
		{Label: "lowest"},
		{Label: "low"},
	}

	items := rank(candidates, "low")
	require.Len(t, items, 2)
	assert.Equal(t, "low", items[0].Label)
}

func TestRankBoostOrdersWithinTier(t *testing.T) {
	candidates := []Item{
		{Label: "monday"},
		{Label: "tomorrow", Boost: 20},
		{Label: "today", Boost: 30},
	}

	items := rank(candidates, "")
	require.Len(t, items, 3)
	assert.Equal(t, "today", items[0].Label)
	assert.Equal(t, "tomorrow", items[1].Label)
	assert.Equal(t, "monday", items[2].Label)
}

func TestRankTiesKeepTableOrder(t *testing.T) {
	candidates := []Item{
		{Label: "black"},
		{Label: "blue"},
	}

	items := rank(candidates, "bl")
	require.Len(t, items, 2)
	assert.Equal(t, "black", items[0].Label)
	assert.Equal(t, "blue", items[1].Label)
}

func TestRankCaseInsensitive(t *testing.T) {
	items := rank([]Item{{Label: "Today"}}, "TOD")
	require.Len(t, items, 1)
}

func TestRankDropsNonMatches(t *testing.T) {
	items := rank([]Item{{Label: "high"}, {Label: "low"}}, "zq")
	assert.Empty(t, items)
}
