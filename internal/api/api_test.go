package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expirysense/expirysense/internal/db"
	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/nutrition"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret, nil)
	server := httptest.NewServer(RequestIDMiddleware(router))
	t.Cleanup(server.Close)
	return server
}

// signupAndLogin registers a fresh account and returns its token.
func signupAndLogin(t *testing.T, server *httptest.Server, username string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": "password"})
	resp, err := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.StatusCode)
	}

	body, _ = json.Marshal(map[string]string{"username": username, "password": "password"})
	resp, err = http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp map[string]string
	json.NewDecoder(resp.Body).Decode(&loginResp)
	token := loginResp["token"]
	if token == "" {
		t.Fatal("empty token from login")
	}
	return token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func doJSON(t *testing.T, req *http.Request, target any) int {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if target != nil {
		json.NewDecoder(resp.Body).Decode(target)
	}
	return resp.StatusCode
}

func TestSignupValidation(t *testing.T) {
	server := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "short"})
	resp, _ := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(body))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", resp.StatusCode)
	}

	// Duplicate username.
	signupAndLogin(t, server, "bob")
	body, _ = json.Marshal(map[string]string{"username": "bob", "password": "password"})
	resp, _ = http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(body))
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := setupTestServer(t)
	signupAndLogin(t, server, "alice")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong-password"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	server := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/items")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated request, got %d", resp.StatusCode)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	req, _ := authRequest("POST", server.URL+"/api/auth/logout", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("logout failed: %d", status)
	}

	req, _ = authRequest("GET", server.URL+"/api/items", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", status)
	}
}

func TestItemCRUDFlow(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	// Create.
	var created model.Item
	req, _ := authRequest("POST", server.URL+"/api/items", token, map[string]string{
		"name":        "Milk",
		"category":    "Dairy",
		"expiry_date": "2030-06-01",
	})
	if status := doJSON(t, req, &created); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.ID == 0 || created.Name != "Milk" {
		t.Fatalf("unexpected created item: %+v", created)
	}

	// Duplicate create conflicts.
	req, _ = authRequest("POST", server.URL+"/api/items", token, map[string]string{
		"name":        "milk",
		"expiry_date": "2030-06-01",
	})
	if status := doJSON(t, req, nil); status != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", status)
	}

	// Malformed date.
	req, _ = authRequest("POST", server.URL+"/api/items", token, map[string]string{
		"name":        "Eggs",
		"expiry_date": "not-a-date",
	})
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", status)
	}

	// Partial update.
	var updated model.Item
	req, _ = authRequest("PUT", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), token, map[string]string{
		"expiry_date": "2030-07-01",
	})
	if status := doJSON(t, req, &updated); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if updated.Name != "Milk" || updated.ExpiryDate.Format("2006-01-02") != "2030-07-01" {
		t.Errorf("unexpected updated item: %+v", updated)
	}

	// Delete, then 404 on repeat.
	req, _ = authRequest("DELETE", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), token, nil)
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	req, _ = authRequest("DELETE", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), token, nil)
	if status := doJSON(t, req, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for deleted item, got %d", status)
	}
}

func TestCrossOwnerAccess(t *testing.T) {
	server := setupTestServer(t)
	aliceToken := signupAndLogin(t, server, "alice")
	bobToken := signupAndLogin(t, server, "bob")

	var created model.Item
	req, _ := authRequest("POST", server.URL+"/api/items", aliceToken, map[string]string{
		"name":        "Milk",
		"expiry_date": "2030-06-01",
	})
	if status := doJSON(t, req, &created); status != http.StatusCreated {
		t.Fatalf("create failed: %d", status)
	}

	// Bob cannot see or mutate Alice's item.
	req, _ = authRequest("GET", server.URL+"/api/items", bobToken, nil)
	var items []model.Item
	doJSON(t, req, &items)
	if len(items) != 0 {
		t.Errorf("expected empty inventory for bob, got %+v", items)
	}

	req, _ = authRequest("DELETE", fmt.Sprintf("%s/api/items/%d", server.URL, created.ID), bobToken, nil)
	if status := doJSON(t, req, nil); status != http.StatusForbidden {
		t.Errorf("expected 403 for foreign delete, got %d", status)
	}
}

func TestSearchEndpoint(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	for _, item := range []map[string]string{
		{"name": "Milk", "category": "Dairy", "expiry_date": "2030-06-01"},
		{"name": "Apples", "category": "Fruits", "expiry_date": "2030-05-01"},
		{"name": "Bread", "category": "Bakery", "expiry_date": "2030-04-01"},
	} {
		req, _ := authRequest("POST", server.URL+"/api/items", token, item)
		if status := doJSON(t, req, nil); status != http.StatusCreated {
			t.Fatalf("create %v failed: %d", item, status)
		}
	}

	// No filters: ascending by expiry date.
	req, _ := authRequest("GET", server.URL+"/api/items", token, nil)
	var items []model.Item
	doJSON(t, req, &items)
	if len(items) != 3 || items[0].Name != "Bread" || items[2].Name != "Milk" {
		t.Errorf("unexpected unfiltered order: %+v", items)
	}

	// Fuzzy text query tolerates a transposition.
	req, _ = authRequest("GET", server.URL+"/api/items?q=mlik", token, nil)
	doJSON(t, req, &items)
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("expected [Milk] for 'mlik', got %+v", items)
	}

	// Category + range conjunction.
	req, _ = authRequest("GET", server.URL+"/api/items?category=Fruits&from=2030-05-01&to=2030-05-31", token, nil)
	doJSON(t, req, &items)
	if len(items) != 1 || items[0].Name != "Apples" {
		t.Errorf("expected [Apples], got %+v", items)
	}

	// Bad date is rejected.
	req, _ = authRequest("GET", server.URL+"/api/items?from=junk", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for bad range date, got %d", status)
	}
}

func TestStatsAndAlertsEndpoints(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	req, _ := authRequest("POST", server.URL+"/api/items", token, map[string]string{
		"name":        "Old Cheese",
		"category":    "Dairy",
		"expiry_date": "2020-01-01",
	})
	if status := doJSON(t, req, nil); status != http.StatusCreated {
		t.Fatalf("create failed: %d", status)
	}

	var stats model.Stats
	req, _ = authRequest("GET", server.URL+"/api/items/stats", token, nil)
	if status := doJSON(t, req, &stats); status != http.StatusOK {
		t.Fatalf("stats failed: %d", status)
	}
	if stats.TotalItems != 1 || stats.Expired != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	var alerts []model.Alert
	req, _ = authRequest("GET", server.URL+"/api/items/alerts", token, nil)
	if status := doJSON(t, req, &alerts); status != http.StatusOK {
		t.Fatalf("alerts failed: %d", status)
	}
	if len(alerts) != 1 || alerts[0].Status != model.StatusExpired {
		t.Errorf("unexpected alerts: %+v", alerts)
	}
}

func TestClearItemsEndpoint(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	for _, name := range []string{"Milk", "Eggs"} {
		req, _ := authRequest("POST", server.URL+"/api/items", token, map[string]string{
			"name":        name,
			"expiry_date": "2030-06-01",
		})
		doJSON(t, req, nil)
	}

	req, _ := authRequest("DELETE", server.URL+"/api/items", token, nil)
	var result map[string]int64
	if status := doJSON(t, req, &result); status != http.StatusOK {
		t.Fatalf("clear failed: %d", status)
	}
	if result["deleted"] != 2 {
		t.Errorf("expected 2 deleted, got %d", result["deleted"])
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	req, _ := authRequest("GET", server.URL+"/api/categories", token, nil)
	var categories []string
	if status := doJSON(t, req, &categories); status != http.StatusOK {
		t.Fatalf("categories failed: %d", status)
	}
	if len(categories) != len(model.Categories) {
		t.Errorf("expected %d categories, got %d", len(model.Categories), len(categories))
	}
}

// fakeLookup returns fixed nutrition facts for every query.
type fakeLookup struct {
	facts model.Nutrition
	err   error
}

func (f *fakeLookup) Facts(_ context.Context, _ string) (*model.Nutrition, error) {
	if f.err != nil {
		return nil, f.err
	}
	facts := f.facts
	return &facts, nil
}

var _ nutrition.Lookup = (*fakeLookup)(nil)

func TestRecipeSuggestionsEndpoint(t *testing.T) {
	database := db.NewTestDB(t)
	lookup := &fakeLookup{facts: model.Nutrition{Calories: 123, Protein: 4, Fat: 5, Carbohydrates: 6}}
	router := NewRouter(database, testJWTSecret, lookup)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token := signupAndLogin(t, server, "alice")

	req, _ := authRequest("GET", server.URL+"/api/recipes/suggestions?ingredients=banana,milk", token, nil)
	var suggestions []model.Suggestion
	if status := doJSON(t, req, &suggestions); status != http.StatusOK {
		t.Fatalf("suggestions failed: %d", status)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for banana + milk")
	}
	if suggestions[0].Recipe.Name != "Banana Smoothie" {
		t.Errorf("expected 'Banana Smoothie' first, got %q", suggestions[0].Recipe.Name)
	}
	if suggestions[0].Recipe.Nutrition.Calories != 123 {
		t.Errorf("expected live nutrition facts, got %+v", suggestions[0].Recipe.Nutrition)
	}
}

func TestRecipeDetailEndpoint(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	req, _ := authRequest("GET", server.URL+"/api/recipes/Banana%20Smoothie", token, nil)
	var recipe model.Recipe
	if status := doJSON(t, req, &recipe); status != http.StatusOK {
		t.Fatalf("recipe detail failed: %d", status)
	}
	if recipe.Name != "Banana Smoothie" || len(recipe.Ingredients) == 0 {
		t.Errorf("unexpected recipe: %+v", recipe)
	}

	req, _ = authRequest("GET", server.URL+"/api/recipes/Nonexistent%20Dish", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown recipe, got %d", status)
	}
}

func TestRecipeSuggestionsLookupFailure(t *testing.T) {
	database := db.NewTestDB(t)
	lookup := &fakeLookup{err: fmt.Errorf("service down")}
	router := NewRouter(database, testJWTSecret, lookup)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token := signupAndLogin(t, server, "alice")

	// A dead nutrition service must not break suggestions: catalog facts win.
	req, _ := authRequest("GET", server.URL+"/api/recipes/suggestions?ingredients=banana", token, nil)
	var suggestions []model.Suggestion
	if status := doJSON(t, req, &suggestions); status != http.StatusOK {
		t.Fatalf("suggestions failed: %d", status)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions despite lookup failure")
	}
	if suggestions[0].Recipe.Nutrition.Calories == 0 {
		t.Error("expected catalog nutrition fallback")
	}
}

func TestSuggestionsFromExpiringItems(t *testing.T) {
	server := setupTestServer(t)
	token := signupAndLogin(t, server, "alice")

	// Nothing expiring: no suggestions.
	req, _ := authRequest("GET", server.URL+"/api/recipes/suggestions", token, nil)
	var suggestions []model.Suggestion
	if status := doJSON(t, req, &suggestions); status != http.StatusOK {
		t.Fatalf("suggestions failed: %d", status)
	}
	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions for empty inventory, got %+v", suggestions)
	}
}
