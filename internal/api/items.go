package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/expirysense/expirysense/internal/imaging"
	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/store"
)

// dateFormat is the wire format for calendar dates.
const dateFormat = "2006-01-02"

// ItemsHandler handles item CRUD, search, stats, and alert endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	ExpiryDate string `json:"expiry_date"`
}

type updateItemRequest struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	ExpiryDate *string `json:"expiry_date"`
}

// Search handles GET /api/items. Query parameters: q (fuzzy name match),
// category (exact), from and to (inclusive expiry date bounds, YYYY-MM-DD).
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	query := model.SearchQuery{
		OwnerID:  claims.UserID,
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(dateFormat, raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD")
			return
		}
		query.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(dateFormat, raw)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD")
			return
		}
		query.To = &to
	}

	items, err := store.SearchItems(r.Context(), h.DB, query)
	if err != nil {
		storeError(w, err, "failed to search items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expiry, err := time.Parse(dateFormat, req.ExpiryDate)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid expiry date, expected YYYY-MM-DD")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, claims.UserID, req.Name, req.Category, expiry)
	if err != nil {
		storeError(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id} with partial field changes.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := model.ItemUpdate{
		Name:     req.Name,
		Category: req.Category,
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse(dateFormat, *req.ExpiryDate)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid expiry date, expected YYYY-MM-DD")
			return
		}
		upd.ExpiryDate = &expiry
	}

	item, err := store.UpdateItem(r.Context(), h.DB, claims.UserID, id, upd)
	if err != nil {
		storeError(w, err, "failed to update item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, claims.UserID, id); err != nil {
		storeError(w, err, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Clear handles DELETE /api/items, removing all of the caller's items.
func (h *ItemsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	n, err := store.ClearItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to clear items")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

// Stats handles GET /api/items/stats.
func (h *ItemsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	stats, err := store.GetStats(r.Context(), h.DB, claims.UserID, time.Now())
	if err != nil {
		storeError(w, err, "failed to compute stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Alerts handles GET /api/items/alerts.
func (h *ItemsHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	alerts, err := store.ListAlerts(r.Context(), h.DB, claims.UserID, time.Now())
	if err != nil {
		storeError(w, err, "failed to list alerts")
		return
	}
	if alerts == nil {
		alerts = []model.Alert{}
	}
	jsonResponse(w, http.StatusOK, alerts)
}

// UploadPhoto handles PUT /api/items/{id}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Prepare(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemPhoto(r.Context(), h.DB, claims.UserID, id, photo.Data, photo.MIME); err != nil {
		storeError(w, err, "failed to save photo")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemPhoto(r.Context(), h.DB, claims.UserID, id)
	if err != nil {
		storeError(w, err, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write(data)
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, model.Categories)
}
