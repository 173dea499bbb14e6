// Package recipes suggests dishes that use up ingredients before they expire.
package recipes

import (
	"sort"

	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/search"
)

// DefaultLimit caps the number of returned suggestions.
const DefaultLimit = 10

// Suggest ranks catalog recipes by how many of the supplied ingredients they
// use. An ingredient counts as used when it fuzzy-matches one of the recipe's
// ingredients. Recipes with no matches are omitted. Ordered by match count
// descending, then name ascending. A limit <= 0 means DefaultLimit.
func Suggest(ingredients []string, limit int) []model.Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var suggestions []model.Suggestion
	for _, recipe := range Catalog {
		var matched []string
		for _, have := range ingredients {
			for _, need := range recipe.Ingredients {
				if search.Matches(need, have) || search.Matches(have, need) {
					matched = append(matched, need)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Recipe:             recipe,
			MatchCount:         len(matched),
			MatchedIngredients: matched,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].MatchCount != suggestions[j].MatchCount {
			return suggestions[i].MatchCount > suggestions[j].MatchCount
		}
		return suggestions[i].Recipe.Name < suggestions[j].Recipe.Name
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
