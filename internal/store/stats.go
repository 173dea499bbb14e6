package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/expirysense/expirysense/internal/model"
)

// GetStats summarizes an owner's inventory: total items, expired items,
// items expiring within model.ExpiringSoonDays, and everything else.
func GetStats(ctx context.Context, db *sql.DB, ownerID int64, now time.Time) (*model.Stats, error) {
	items, err := listOwnerItems(ctx, db, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{TotalItems: len(items)}
	for _, item := range items {
		left := item.DaysUntilExpiry(now)
		switch {
		case left < 0:
			stats.Expired++
		case left <= model.ExpiringSoonDays:
			stats.ExpiringSoon++
		default:
			stats.Fresh++
		}
	}
	return stats, nil
}
