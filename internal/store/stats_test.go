package store

import (
	"context"
	"testing"

	"github.com/expirysense/expirysense/internal/db"
)

func TestGetStats(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")
	now := date(2024, 6, 10)
	CreateItem(ctx, database, user.ID, "Gone", "", date(2024, 6, 1))
	CreateItem(ctx, database, user.ID, "Today", "", date(2024, 6, 10))
	CreateItem(ctx, database, user.ID, "Soon", "", date(2024, 6, 14))
	CreateItem(ctx, database, user.ID, "Fresh", "", date(2024, 7, 10))

	stats, err := GetStats(ctx, database, user.ID, now)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalItems != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalItems)
	}
	if stats.Expired != 1 {
		t.Errorf("expected 1 expired, got %d", stats.Expired)
	}
	if stats.ExpiringSoon != 2 {
		t.Errorf("expected 2 expiring soon, got %d", stats.ExpiringSoon)
	}
	if stats.Fresh != 1 {
		t.Errorf("expected 1 fresh, got %d", stats.Fresh)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")

	stats, err := GetStats(ctx, database, user.ID, date(2024, 6, 10))
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalItems != 0 || stats.Expired != 0 || stats.ExpiringSoon != 0 || stats.Fresh != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
