// Package scheduler runs the periodic expiry scan. Every morning it walks all
// accounts and logs a summary of items that are expired or about to expire,
// so operators can see waste building up without opening the app.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/expirysense/expirysense/internal/model"
	"github.com/expirysense/expirysense/internal/store"
)

// scanSchedule is the cron expression for the daily expiry scan.
const scanSchedule = "0 7 * * *"

// Scheduler owns the cron instance running background scans.
type Scheduler struct {
	cron *cron.Cron
	db   *sql.DB
}

// New creates a scheduler bound to the given database.
func New(db *sql.DB) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers the daily scan and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(scanSchedule, s.runScan); err != nil {
		return fmt.Errorf("scheduling expiry scan: %w", err)
	}
	s.cron.Start()
	slog.Info("expiry scan scheduled", "schedule", scanSchedule)
	return nil
}

// Stop stops the cron loop, waiting for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runScan() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := Scan(ctx, s.db, time.Now()); err != nil {
		slog.Error("expiry scan failed", "error", err)
	}
}

// Scan computes and logs per-account expiry summaries. Accounts with nothing
// expired or expiring soon are skipped.
func Scan(ctx context.Context, db *sql.DB, now time.Time) error {
	userIDs, err := store.ListUserIDs(ctx, db)
	if err != nil {
		return fmt.Errorf("listing accounts: %w", err)
	}

	for _, id := range userIDs {
		stats, err := store.GetStats(ctx, db, id, now)
		if err != nil {
			return fmt.Errorf("scanning account %d: %w", id, err)
		}
		if stats.Expired == 0 && stats.ExpiringSoon == 0 {
			continue
		}
		slog.Warn("items need attention",
			"user_id", id,
			"expired", stats.Expired,
			"expiring_soon", stats.ExpiringSoon,
			"window_days", model.ExpiringSoonDays,
		)
	}
	return nil
}
