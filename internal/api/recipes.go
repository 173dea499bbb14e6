package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/nutrition"
	"github.com/expirysense/expirysense/internal/recipes"
	"github.com/expirysense/expirysense/internal/store"
)

// RecipesHandler serves the recipe catalog and suggestion endpoints.
// Nutrition may be nil, in which case suggestions carry catalog facts only.
type RecipesHandler struct {
	DB        *sql.DB
	Nutrition nutrition.Lookup
}

// defaultSuggestionDays is the expiring-soon window used when no explicit
// ingredient list is supplied.
const defaultSuggestionDays = 7

// List handles GET /api/recipes.
func (h *RecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, recipes.Catalog)
}

// Get handles GET /api/recipes/{name}, serving one catalog recipe with
// live nutrition facts when the lookup is available.
func (h *RecipesHandler) Get(w http.ResponseWriter, r *http.Request) {
	found := recipes.Find(r.PathValue("name"))
	if found == nil {
		jsonError(w, http.StatusNotFound, "unknown recipe")
		return
	}

	recipe := *found
	if h.Nutrition != nil {
		facts, err := h.Nutrition.Facts(r.Context(), recipe.Name)
		if err != nil {
			slog.Warn("nutrition lookup failed", "recipe", recipe.Name, "error", err)
		} else {
			recipe.Nutrition = *facts
		}
	}
	jsonResponse(w, http.StatusOK, recipe)
}

// Suggestions handles GET /api/recipes/suggestions. With ?ingredients=a,b the
// supplied list is used; otherwise ingredients default to the caller's items
// expiring within ?days (default 7). ?limit caps the result count.
func (h *RecipesHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var ingredients []string
	if raw := r.URL.Query().Get("ingredients"); raw != "" {
		for _, ing := range strings.Split(raw, ",") {
			if ing = strings.TrimSpace(ing); ing != "" {
				ingredients = append(ingredients, ing)
			}
		}
	} else {
		days := defaultSuggestionDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				jsonError(w, http.StatusBadRequest, "invalid 'days' value")
				return
			}
			days = parsed
		}

		expiring, err := store.ExpiringWithin(r.Context(), h.DB, claims.UserID, days, time.Now())
		if err != nil {
			storeError(w, err, "failed to list expiring items")
			return
		}
		for _, item := range expiring {
			ingredients = append(ingredients, item.Name)
		}
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			jsonError(w, http.StatusBadRequest, "invalid 'limit' value")
			return
		}
		limit = parsed
	}

	suggestions := recipes.Suggest(ingredients, limit)
	h.refreshNutrition(r, suggestions)

	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	jsonResponse(w, http.StatusOK, suggestions)
}

// refreshNutrition replaces catalog nutrition facts with live figures where
// the lookup succeeds. Failures are logged and the catalog facts kept, so an
// unavailable service never affects suggestions.
func (h *RecipesHandler) refreshNutrition(r *http.Request, suggestions []model.Suggestion) {
	if h.Nutrition == nil {
		return
	}

	for i := range suggestions {
		facts, err := h.Nutrition.Facts(r.Context(), suggestions[i].Recipe.Name)
		if err != nil {
			slog.Warn("nutrition lookup failed", "recipe", suggestions[i].Recipe.Name, "error", err)
			continue
		}
		suggestions[i].Recipe.Nutrition = *facts
	}
}
