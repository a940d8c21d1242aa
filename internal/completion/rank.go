package completion

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Base scores per match tier. An item's Boost is added on top, so tiers
// dominate boosts and boosts only reorder within a tier.
const (
	scoreExact    = 1000
	scorePrefix   = 750
	scoreContains = 500
	scoreFuzzy    = 250
)

// rank scores candidates against query and returns matches in descending
// score order. Ties keep table order. An empty query keeps every
// candidate, ordered by boost alone.
func rank(candidates []Item, query string) []Item {
	type scored struct {
		item  Item
		score int
	}

	q := strings.ToLower(query)
	matched := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score, ok := matchScore(strings.ToLower(c.Label), q)
		if !ok {
			continue
		}
		matched = append(matched, scored{item: c, score: score + c.Boost})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	items := make([]Item, len(matched))
	for i, s := range matched {
		items[i] = s.item
	}
	return items
}

// matchScore returns the tier score for label against a lowercased query,
// or false when the label does not match at all.
func matchScore(label, query string) (int, bool) {
	switch {
	case query == "":
		return 0, true
	case label == query:
		return scoreExact, true
	case strings.HasPrefix(label, query):
		return scorePrefix, true
	case strings.Contains(label, query):
		return scoreContains, true
	case fuzzy.MatchNormalizedFold(query, label):
		// Closer candidates score higher within the fuzzy tier.
		d := fuzzy.LevenshteinDistance(query, label)
		if d > scoreFuzzy {
			d = scoreFuzzy
		}
		return scoreFuzzy - d, true
	default:
		return 0, false
	}
}
