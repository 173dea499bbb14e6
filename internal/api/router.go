package api

import (
	"database/sql"
	"net/http"

	"github.com/expirysense/expirysense/internal/nutrition"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, lookup nutrition.Lookup) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	recipesHandler := &RecipesHandler{DB: db, Nutrition: lookup}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated account management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Items: all owner-scoped through token claims.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.Search)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("DELETE /api/items", authMW(http.HandlerFunc(itemsHandler.Clear)))
	mux.Handle("GET /api/items/stats", authMW(http.HandlerFunc(itemsHandler.Stats)))
	mux.Handle("GET /api/items/alerts", authMW(http.HandlerFunc(itemsHandler.Alerts)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/photo", authMW(http.HandlerFunc(itemsHandler.UploadPhoto)))
	mux.Handle("GET /api/items/{id}/photo", authMW(http.HandlerFunc(itemsHandler.GetPhoto)))

	// Reference data.
	mux.Handle("GET /api/categories", authMW(http.HandlerFunc(itemsHandler.Categories)))

	// Recipes.
	mux.Handle("GET /api/recipes", authMW(http.HandlerFunc(recipesHandler.List)))
	mux.Handle("GET /api/recipes/suggestions", authMW(http.HandlerFunc(recipesHandler.Suggestions)))
	mux.Handle("GET /api/recipes/{name}", authMW(http.HandlerFunc(recipesHandler.Get)))

	return mux
}
