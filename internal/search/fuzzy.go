// Package search implements the approximate name matching used by item
// search and recipe suggestions. Matching is case-insensitive: an exact
// substring always scores 1.0, anything else is scored by Jaro-Winkler
// similarity against the whole name and against each of its words, taking
// the best. Scoring against individual words keeps short queries usable
// against multi-word names ("milk" vs "Whole Milk 2%").
package search

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Threshold is the minimum score for a name to count as a match.
// Tuned conservatively: one transposition in a short word ("mlik" for
// "milk") scores ~0.92 and passes, unrelated words score well below.
const Threshold = 0.8

var jaroWinkler = metrics.NewJaroWinkler()

// Score rates how well name matches query, in [0, 1]. An empty query
// matches everything.
func Score(name, query string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 1
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if strings.Contains(name, query) {
		return 1
	}

	best := strutil.Similarity(name, query, jaroWinkler)
	for _, word := range strings.Fields(name) {
		if s := strutil.Similarity(word, query, jaroWinkler); s > best {
			best = s
		}
	}
	return best
}

// Matches reports whether name matches query at or above Threshold.
func Matches(name, query string) bool {
	return Score(name, query) >= Threshold
}
