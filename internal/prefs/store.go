// Package prefs owns theme and display preferences: loaded once at startup,
// written through to the key-value store on every change, and broadcast to
// subscribers. The persisted form stays plain JSON with no schema version,
// so a malformed blob falls back to defaults instead of failing startup.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/stockdeck/stockdeck/internal/platform/kv"
)

// Storage keys. Theme is persisted independently of the preferences blob.
const (
	themeKey       = "theme"
	preferencesKey = "preferences"
)

// Theme values. Exactly two exist.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// MinRefreshInterval is the floor for autoRefresh, in milliseconds.
const MinRefreshInterval = 10000

// Preferences is the display preference blob.
type Preferences struct {
	CompactMode     bool `json:"compactMode"`
	ShowCharts      bool `json:"showCharts"`
	ShowPredictions bool `json:"showPredictions"`
	AutoRefresh     bool `json:"autoRefresh"`
	RefreshInterval int  `json:"refreshInterval"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Preferences {
	return Preferences{
		CompactMode:     false,
		ShowCharts:      true,
		ShowPredictions: true,
		AutoRefresh:     false,
		RefreshInterval: 30000,
	}
}

// Partial carries the fields of a shallow-merge update. Nil fields keep
// their current value.
type Partial struct {
	CompactMode     *bool `json:"compactMode,omitempty"`
	ShowCharts      *bool `json:"showCharts,omitempty"`
	ShowPredictions *bool `json:"showPredictions,omitempty"`
	AutoRefresh     *bool `json:"autoRefresh,omitempty"`
	RefreshInterval *int  `json:"refreshInterval,omitempty"`
}

// Subscriber receives the merged preferences after every update.
type Subscriber func(Preferences)

// Store is the process-wide preference state.
type Store struct {
	kv     kv.Store
	logger *slog.Logger

	mu          sync.RWMutex
	prefs       Preferences
	theme       string
	subscribers []Subscriber
}

// NewStore loads persisted state and returns the store. Malformed persisted
// JSON is logged and replaced by defaults.
func NewStore(ctx context.Context, store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: store, logger: logger, prefs: Defaults(), theme: ThemeLight}

	if raw, err := store.Get(ctx, themeKey); err == nil {
		if raw == ThemeDark {
			s.theme = ThemeDark
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		logger.Warn("load theme", slog.Any("error", err))
	}

	raw, err := store.Get(ctx, preferencesKey)
	switch {
	case err == nil:
		var loaded Preferences
		if jsonErr := json.Unmarshal([]byte(raw), &loaded); jsonErr != nil {
			logger.Warn("persisted preferences malformed, using defaults", slog.Any("error", jsonErr))
		} else {
			s.prefs = loaded
		}
	case !errors.Is(err, kv.ErrNotFound):
		logger.Warn("load preferences", slog.Any("error", err))
	}
	return s
}

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Reload re-reads the persisted blob and replaces the in-memory copy.
// Processes that do not own preference writes, such as the background
// worker, call this before acting on the values so updates made by another
// process take effect. A missing or malformed blob keeps the current copy.
func (s *Store) Reload(ctx context.Context) Preferences {
	raw, err := s.kv.Get(ctx, preferencesKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("reload preferences", slog.Any("error", err))
		}
		return s.Get()
	}
	var loaded Preferences
	if jsonErr := json.Unmarshal([]byte(raw), &loaded); jsonErr != nil {
		s.logger.Warn("persisted preferences malformed, keeping current", slog.Any("error", jsonErr))
		return s.Get()
	}
	s.mu.Lock()
	s.prefs = loaded
	s.mu.Unlock()
	return loaded
}

// Theme returns the current theme value.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Subscribe registers a callback invoked after every preference update.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Update shallow-merges partial into the current preferences, persists the
// full merged blob, broadcasts it, and returns it. A refresh interval below
// the floor is raised to the floor.
func (s *Store) Update(ctx context.Context, partial Partial) (Preferences, error) {
	s.mu.Lock()
	merged := s.prefs
	if partial.CompactMode != nil {
		merged.CompactMode = *partial.CompactMode
	}
	if partial.ShowCharts != nil {
		merged.ShowCharts = *partial.ShowCharts
	}
	if partial.ShowPredictions != nil {
		merged.ShowPredictions = *partial.ShowPredictions
	}
	if partial.AutoRefresh != nil {
		merged.AutoRefresh = *partial.AutoRefresh
	}
	if partial.RefreshInterval != nil {
		merged.RefreshInterval = *partial.RefreshInterval
		if merged.RefreshInterval < MinRefreshInterval {
			merged.RefreshInterval = MinRefreshInterval
		}
	}
	s.prefs = merged
	subscribers := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	payload, err := json.Marshal(merged)
	if err != nil {
		return merged, err
	}
	if err := s.kv.Set(ctx, preferencesKey, string(payload)); err != nil {
		return merged, err
	}
	for _, fn := range subscribers {
		fn(merged)
	}
	return merged, nil
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	theme := s.theme
	s.mu.Unlock()

	if err := s.kv.Set(ctx, themeKey, theme); err != nil {
		return theme, err
	}
	return theme, nil
}
