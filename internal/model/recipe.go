package model

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// Recipe represents a suggested dish and its ingredient list.
type Recipe struct {
	Name         string    `json:"name"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Nutrition    Nutrition `json:"nutrition"`
	PrepTime     string    `json:"prep_time"`
	Difficulty   string    `json:"difficulty"`
}

// Suggestion is a recipe ranked by how many of the caller's ingredients it uses.
type Suggestion struct {
	Recipe             Recipe   `json:"recipe"`
	MatchCount         int      `json:"match_count"`
	MatchedIngredients []string `json:"matched_ingredients,omitempty"`
}
