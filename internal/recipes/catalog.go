package recipes

import "github.com/expirysense/expirysense/internal/model"

// Catalog is the built-in recipe collection. Nutrition figures are
// per-serving fallbacks used when no live lookup is configured.
var Catalog = []model.Recipe{
	{
		Name:         "Pasta Primavera",
		Ingredients:  []string{"pasta", "vegetables", "olive oil", "garlic", "parmesan"},
		Instructions: "1. Boil pasta according to package directions.\n2. Sauté vegetables in olive oil with garlic.\n3. Toss pasta with vegetables and top with parmesan.",
		Nutrition:    model.Nutrition{Calories: 300, Protein: 10, Fat: 5, Carbohydrates: 50},
		PrepTime:     "25 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Vegetable Stir Fry",
		Ingredients:  []string{"vegetables", "soy sauce", "rice", "ginger", "garlic"},
		Instructions: "1. Cook rice.\n2. Stir fry vegetables with ginger and garlic.\n3. Add soy sauce and serve over rice.",
		Nutrition:    model.Nutrition{Calories: 250, Protein: 8, Fat: 3, Carbohydrates: 45},
		PrepTime:     "20 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Chicken Caesar Salad",
		Ingredients:  []string{"chicken breast", "romaine lettuce", "croutons", "caesar dressing", "parmesan"},
		Instructions: "1. Grill chicken breast until cooked through.\n2. Chop romaine lettuce.\n3. Toss with croutons, Caesar dressing, and sliced chicken.\n4. Top with parmesan.",
		Nutrition:    model.Nutrition{Calories: 350, Protein: 30, Fat: 15, Carbohydrates: 20},
		PrepTime:     "30 mins",
		Difficulty:   "Medium",
	},
	{
		Name:         "Tomato Basil Soup",
		Ingredients:  []string{"tomatoes", "basil", "cream", "vegetable broth", "onion"},
		Instructions: "1. Sauté onions until soft.\n2. Add tomatoes and broth, simmer for 20 mins.\n3. Blend until smooth.\n4. Stir in cream and fresh basil.",
		Nutrition:    model.Nutrition{Calories: 200, Protein: 5, Fat: 10, Carbohydrates: 20},
		PrepTime:     "35 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Grilled Salmon",
		Ingredients:  []string{"salmon fillet", "lemon", "garlic", "olive oil", "herbs"},
		Instructions: "1. Marinate salmon with olive oil, garlic, and herbs.\n2. Grill for 4-5 minutes per side.\n3. Serve with lemon wedges.",
		Nutrition:    model.Nutrition{Calories: 400, Protein: 35, Fat: 20, Carbohydrates: 5},
		PrepTime:     "20 mins",
		Difficulty:   "Medium",
	},
	{
		Name:         "Veggie Wrap",
		Ingredients:  []string{"tortilla", "hummus", "mixed vegetables", "spinach", "feta"},
		Instructions: "1. Spread hummus on tortilla.\n2. Layer with spinach, mixed vegetables, and feta.\n3. Roll tightly and cut in half.",
		Nutrition:    model.Nutrition{Calories: 300, Protein: 8, Fat: 10, Carbohydrates: 40},
		PrepTime:     "10 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Quinoa Salad",
		Ingredients:  []string{"quinoa", "cucumber", "tomatoes", "feta cheese", "olive oil", "lemon"},
		Instructions: "1. Cook quinoa and let cool.\n2. Chop vegetables.\n3. Mix quinoa with vegetables, feta, olive oil, and lemon juice.",
		Nutrition:    model.Nutrition{Calories: 350, Protein: 12, Fat: 15, Carbohydrates: 35},
		PrepTime:     "25 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Banana Smoothie",
		Ingredients:  []string{"banana", "milk", "honey", "ice", "vanilla"},
		Instructions: "1. Combine all ingredients in blender.\n2. Blend until smooth and creamy.\n3. Serve immediately.",
		Nutrition:    model.Nutrition{Calories: 200, Protein: 6, Fat: 2, Carbohydrates: 40},
		PrepTime:     "5 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Turkey Sandwich",
		Ingredients:  []string{"whole-grain bread", "turkey slices", "lettuce", "tomato", "mayonnaise", "cheese"},
		Instructions: "1. Toast bread if desired.\n2. Layer turkey, lettuce, tomato, and cheese.\n3. Spread mayonnaise and close sandwich.",
		Nutrition:    model.Nutrition{Calories: 320, Protein: 20, Fat: 10, Carbohydrates: 40},
		PrepTime:     "10 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Lentil Soup",
		Ingredients:  []string{"lentils", "carrots", "onion", "garlic", "vegetable broth", "cumin"},
		Instructions: "1. Sauté onion, garlic, and carrots.\n2. Add lentils, broth, and cumin.\n3. Simmer until lentils are tender (30-40 mins).",
		Nutrition:    model.Nutrition{Calories: 250, Protein: 12, Fat: 3, Carbohydrates: 40},
		PrepTime:     "45 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Avocado Toast",
		Ingredients:  []string{"whole-grain bread", "avocado", "lemon juice", "salt", "pepper"},
		Instructions: "1. Toast bread until golden.\n2. Mash avocado with lemon juice, salt, and pepper.\n3. Spread generously on toast.",
		Nutrition:    model.Nutrition{Calories: 250, Protein: 5, Fat: 15, Carbohydrates: 25},
		PrepTime:     "5 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Berry Parfait",
		Ingredients:  []string{"yogurt", "berries", "granola", "honey"},
		Instructions: "1. Layer yogurt in a glass.\n2. Add berries and granola.\n3. Repeat layers and drizzle with honey.",
		Nutrition:    model.Nutrition{Calories: 200, Protein: 8, Fat: 4, Carbohydrates: 30},
		PrepTime:     "5 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Stuffed Bell Peppers",
		Ingredients:  []string{"bell peppers", "rice", "ground beef", "tomato sauce", "cheese"},
		Instructions: "1. Cook rice and brown ground beef.\n2. Mix with tomato sauce.\n3. Stuff peppers and bake at 375°F for 30 mins.\n4. Top with cheese and bake 5 more mins.",
		Nutrition:    model.Nutrition{Calories: 400, Protein: 25, Fat: 15, Carbohydrates: 50},
		PrepTime:     "50 mins",
		Difficulty:   "Medium",
	},
	{
		Name:         "Shrimp Tacos",
		Ingredients:  []string{"shrimp", "tortillas", "cabbage", "lime", "cilantro", "avocado"},
		Instructions: "1. Season and cook shrimp.\n2. Warm tortillas.\n3. Fill with shrimp, cabbage, and avocado.\n4. Top with cilantro and lime juice.",
		Nutrition:    model.Nutrition{Calories: 300, Protein: 20, Fat: 10, Carbohydrates: 30},
		PrepTime:     "20 mins",
		Difficulty:   "Medium",
	},
	{
		Name:         "Chickpea Salad",
		Ingredients:  []string{"chickpeas", "cucumber", "tomatoes", "feta cheese", "olive oil", "lemon"},
		Instructions: "1. Drain and rinse chickpeas.\n2. Chop vegetables.\n3. Mix all ingredients with olive oil and lemon juice.",
		Nutrition:    model.Nutrition{Calories: 250, Protein: 10, Fat: 12, Carbohydrates: 30},
		PrepTime:     "15 mins",
		Difficulty:   "Easy",
	},
	{
		Name:         "Beef Stir Fry",
		Ingredients:  []string{"beef", "broccoli", "soy sauce", "rice", "ginger", "garlic"},
		Instructions: "1. Cook rice.\n2. Stir fry beef with ginger and garlic.\n3. Add broccoli and soy sauce.\n4. Serve over rice.",
		Nutrition:    model.Nutrition{Calories: 450, Protein: 30, Fat: 20, Carbohydrates: 40},
		PrepTime:     "25 mins",
		Difficulty:   "Medium",
	},
	{
		Name:         "Mushroom Risotto",
		Ingredients:  []string{"arborio rice", "mushrooms", "broth", "parmesan cheese", "white wine", "onion"},
		Instructions: "1. Sauté onion and mushrooms.\n2. Add rice and toast lightly.\n3. Gradually add warm broth, stirring constantly.\n4. Finish with parmesan and white wine.",
		Nutrition:    model.Nutrition{Calories: 350, Protein: 10, Fat: 8, Carbohydrates: 60},
		PrepTime:     "40 mins",
		Difficulty:   "Hard",
	},
}

// Find returns the catalog recipe with the given name, or nil.
func Find(name string) *model.Recipe {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i]
		}
	}
	return nil
}
