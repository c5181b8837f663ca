package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/stockdeck/stockdeck/internal/dashboard"
	"github.com/stockdeck/stockdeck/internal/platform/kv"
	"github.com/stockdeck/stockdeck/internal/prefs"
)

// Snapshot is the persisted form of a warmed dashboard view.
type Snapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	View        dashboard.View `json:"view"`
}

// Refresher rebuilds the dashboard snapshot. It only runs while the
// auto-refresh preference is on, and it skips cycles that would rebuild a
// snapshot younger than the configured refresh interval.
type Refresher struct {
	dashboard *dashboard.Service
	prefs     *prefs.Store
	kv        kv.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewRefresher wires the snapshot job.
func NewRefresher(svc *dashboard.Service, preferences *prefs.Store, store kv.Store, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{dashboard: svc, prefs: preferences, kv: store, logger: logger, now: time.Now}
}

// HandleDashboardRefresh processes TaskDashboardRefresh tasks. Preferences
// are reloaded from the store on every run: the gateway writes them from a
// different process, so the worker's in-memory copy goes stale otherwise.
func (r *Refresher) HandleDashboardRefresh(ctx context.Context, _ *asynq.Task) error {
	p := r.prefs.Reload(ctx)
	if !p.AutoRefresh {
		return nil
	}

	interval := time.Duration(p.RefreshInterval) * time.Millisecond
	if prev, err := r.load(ctx); err == nil && r.now().Sub(prev.GeneratedAt) < interval {
		return nil
	}

	view, err := r.dashboard.Load(ctx)
	if err != nil {
		r.logger.Warn("dashboard refresh failed", slog.Any("error", err))
		return err
	}

	payload, err := json.Marshal(Snapshot{GeneratedAt: r.now(), View: view})
	if err != nil {
		return asynq.SkipRetry
	}
	if err := r.kv.Set(ctx, SnapshotKey, string(payload)); err != nil {
		return err
	}
	r.logger.Info("dashboard snapshot refreshed")
	return nil
}

func (r *Refresher) load(ctx context.Context) (Snapshot, error) {
	raw, err := r.kv.Get(ctx, SnapshotKey)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// LoadSnapshot returns the warmed dashboard view, if one exists.
func LoadSnapshot(ctx context.Context, store kv.Store) (Snapshot, error) {
	raw, err := store.Get(ctx, SnapshotKey)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, errors.New("jobs: persisted snapshot malformed")
	}
	return snap, nil
}
