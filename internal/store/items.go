package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/search"
)

// dateOnly truncates a timestamp to its calendar date in UTC. All stored
// dates are normalized this way so equality and range comparisons hold.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateItem validates and stores a new item for the given owner.
// The added date is set once, at creation.
func CreateItem(ctx context.Context, db *sql.DB, ownerID int64, name, category string, expiry time.Time) (*model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name required: %w", ErrValidation)
	}
	if expiry.IsZero() {
		return nil, fmt.Errorf("expiry date required: %w", ErrValidation)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = model.CategoryOther
	}
	expiry = dateOnly(expiry)

	defer lockOwner(ownerID)()

	dup, err := hasDuplicate(ctx, db, ownerID, 0, name, expiry)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("item %q with the same expiry date exists: %w", name, ErrDuplicate)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (owner_id, name, category, expiry_date, added_date)
		 VALUES (?, ?, ?, ?, ?)`,
		ownerID, name, category, expiry, dateOnly(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, ownerID, id)
}

// GetItem returns an item by ID, checking ownership.
func GetItem(ctx context.Context, db *sql.DB, ownerID, id int64) (*model.Item, error) {
	item, err := getItemAny(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, fmt.Errorf("item %d: %w", id, ErrPermission)
	}
	return item, nil
}

// getItemAny returns an item by ID regardless of owner.
func getItemAny(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, category, expiry_date, added_date, photo_mime
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.OwnerID, &item.Name, &item.Category, &item.ExpiryDate, &item.AddedDate, &photoMime)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.PhotoMime = photoMime.String
	return item, nil
}

// UpdateItem applies a partial edit to an item after the same validation as
// CreateItem. The whole update either applies or the item is left unchanged.
func UpdateItem(ctx context.Context, db *sql.DB, ownerID, id int64, upd model.ItemUpdate) (*model.Item, error) {
	defer lockOwner(ownerID)()

	item, err := GetItem(ctx, db, ownerID, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if upd.Name != nil {
		name = strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("item name required: %w", ErrValidation)
		}
	}

	category := item.Category
	if upd.Category != nil {
		category = strings.TrimSpace(*upd.Category)
		if category == "" {
			category = model.CategoryOther
		}
	}

	expiry := dateOnly(item.ExpiryDate)
	if upd.ExpiryDate != nil {
		if upd.ExpiryDate.IsZero() {
			return nil, fmt.Errorf("expiry date required: %w", ErrValidation)
		}
		expiry = dateOnly(*upd.ExpiryDate)
	}

	if !strings.EqualFold(name, item.Name) || !expiry.Equal(dateOnly(item.ExpiryDate)) {
		dup, err := hasDuplicate(ctx, db, ownerID, id, name, expiry)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, fmt.Errorf("item %q with the same expiry date exists: %w", name, ErrDuplicate)
		}
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, expiry_date = ? WHERE id = ?`,
		name, category, expiry, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return GetItem(ctx, db, ownerID, id)
}

// DeleteItem deletes an item outright, checking ownership.
func DeleteItem(ctx context.Context, db *sql.DB, ownerID, id int64) error {
	defer lockOwner(ownerID)()

	if _, err := GetItem(ctx, db, ownerID, id); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// ClearItems deletes all items belonging to an owner and returns the count.
func ClearItems(ctx context.Context, db *sql.DB, ownerID int64) (int64, error) {
	defer lockOwner(ownerID)()

	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE owner_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared items: %w", err)
	}
	return n, nil
}

// SearchItems resolves an owner-scoped search. All supplied filters are
// applied as a conjunction. With a text query, results come back ordered by
// match score descending (id ascending on ties); without one, by expiry date
// ascending (soonest first), then id ascending.
func SearchItems(ctx context.Context, db *sql.DB, q model.SearchQuery) ([]model.Item, error) {
	items, err := listOwnerItems(ctx, db, q.OwnerID)
	if err != nil {
		return nil, err
	}

	var matched []model.Item
	scores := make(map[int64]float64)
	for _, item := range items {
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		expiry := dateOnly(item.ExpiryDate)
		if q.From != nil && expiry.Before(dateOnly(*q.From)) {
			continue
		}
		if q.To != nil && expiry.After(dateOnly(*q.To)) {
			continue
		}
		if q.Text != "" {
			score := search.Score(item.Name, q.Text)
			if score < search.Threshold {
				continue
			}
			scores[item.ID] = score
		}
		matched = append(matched, item)
	}

	if q.Text != "" {
		sort.Slice(matched, func(i, j int) bool {
			si, sj := scores[matched[i].ID], scores[matched[j].ID]
			if si != sj {
				return si > sj
			}
			return matched[i].ID < matched[j].ID
		})
	} else {
		sort.Slice(matched, func(i, j int) bool {
			ei, ej := matched[i].ExpiryDate, matched[j].ExpiryDate
			if !ei.Equal(ej) {
				return ei.Before(ej)
			}
			return matched[i].ID < matched[j].ID
		})
	}

	return matched, nil
}

// ExpiringWithin returns an owner's items expiring between now and now+days,
// inclusive, soonest first. Already-expired items are excluded.
func ExpiringWithin(ctx context.Context, db *sql.DB, ownerID int64, days int, now time.Time) ([]model.Item, error) {
	items, err := listOwnerItems(ctx, db, ownerID)
	if err != nil {
		return nil, err
	}

	var expiring []model.Item
	for _, item := range items {
		left := item.DaysUntilExpiry(now)
		if left >= 0 && left <= days {
			expiring = append(expiring, item)
		}
	}

	sort.Slice(expiring, func(i, j int) bool {
		ei, ej := expiring[i].ExpiryDate, expiring[j].ExpiryDate
		if !ei.Equal(ej) {
			return ei.Before(ej)
		}
		return expiring[i].ID < expiring[j].ID
	})
	return expiring, nil
}

// ListAlerts returns all of an owner's items with their expiry state, ordered
// by urgency (expired first), then by days left, then by id.
func ListAlerts(ctx context.Context, db *sql.DB, ownerID int64, now time.Time) ([]model.Alert, error) {
	items, err := listOwnerItems(ctx, db, ownerID)
	if err != nil {
		return nil, err
	}

	rank := make(map[string]int, len(model.StatusPriority))
	for i, s := range model.StatusPriority {
		rank[s] = i
	}

	alerts := make([]model.Alert, 0, len(items))
	for _, item := range items {
		left := item.DaysUntilExpiry(now)
		alerts = append(alerts, model.Alert{
			Item:     item,
			DaysLeft: left,
			Status:   model.ExpiryStatus(left),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		ri, rj := rank[alerts[i].Status], rank[alerts[j].Status]
		if ri != rj {
			return ri < rj
		}
		if alerts[i].DaysLeft != alerts[j].DaysLeft {
			return alerts[i].DaysLeft < alerts[j].DaysLeft
		}
		return alerts[i].Item.ID < alerts[j].Item.ID
	})
	return alerts, nil
}

// SetItemPhoto stores an item's photo, checking ownership.
func SetItemPhoto(ctx context.Context, db *sql.DB, ownerID, id int64, photo []byte, mime string) error {
	defer lockOwner(ownerID)()

	if _, err := GetItem(ctx, db, ownerID, id); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ? WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type, checking ownership.
// Returns nil data if the item has no photo.
func GetItemPhoto(ctx context.Context, db *sql.DB, ownerID, id int64) ([]byte, string, error) {
	if _, err := GetItem(ctx, db, ownerID, id); err != nil {
		return nil, "", err
	}

	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}

// listOwnerItems returns all of one owner's items, unordered.
func listOwnerItems(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_id, name, category, expiry_date, added_date, photo_mime
		 FROM items WHERE owner_id = ?`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var photoMime sql.NullString
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Category, &item.ExpiryDate, &item.AddedDate, &photoMime); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.PhotoMime = photoMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// hasDuplicate reports whether the owner already has an item with the same
// name (case-insensitive) and expiry date, excluding excludeID.
func hasDuplicate(ctx context.Context, db *sql.DB, ownerID, excludeID int64, name string, expiry time.Time) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items
		 WHERE owner_id = ? AND id != ? AND lower(name) = lower(?) AND expiry_date = ?`,
		ownerID, excludeID, name, expiry,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking duplicate item: %w", err)
	}
	return count > 0, nil
}
