package game

import (
	"context"

	"github.com/merev/scoreboard-api/internal/cacheta"
	"github.com/merev/scoreboard-api/internal/fodinha"
	"github.com/merev/scoreboard-api/internal/settings"
	"github.com/merev/scoreboard-api/internal/store"
	"github.com/merev/scoreboard-api/internal/truco"
)

// Repository maps engine state to stored snapshots. Loads are synchronous;
// saves go through the background writer and never fail the caller.
type Repository struct {
	store  store.Store
	writer *store.Writer
}

func NewRepository(s store.Store, w *store.Writer) *Repository {
	return &Repository{store: s, writer: w}
}

// -----------------------------------------------------------------------------
// Loading
// -----------------------------------------------------------------------------

// LoadTruco restores the saved Truco match, or starts one from defaults.
func (r *Repository) LoadTruco(ctx context.Context, defaults truco.Config) *truco.Match {
	var snap truco.Snapshot
	if !store.LoadJSON(ctx, r.store, store.KeyTruco, &snap) {
		return truco.New(defaults)
	}
	return truco.Restore(snap, defaults)
}

func (r *Repository) LoadCacheta(ctx context.Context, defaults cacheta.Config) *cacheta.Table {
	var snap cacheta.Snapshot
	if !store.LoadJSON(ctx, r.store, store.KeyCacheta, &snap) {
		return cacheta.New(defaults)
	}
	return cacheta.Restore(snap, defaults)
}

func (r *Repository) LoadFodinha(ctx context.Context, defaults fodinha.Config) *fodinha.Table {
	var snap fodinha.Snapshot
	if !store.LoadJSON(ctx, r.store, store.KeyFodinha, &snap) {
		return fodinha.New(defaults)
	}
	return fodinha.Restore(snap, defaults)
}

// LoadSettings returns the saved preferences, if any.
func (r *Repository) LoadSettings(ctx context.Context) (settings.Settings, bool) {
	var s settings.Settings
	ok := store.LoadJSON(ctx, r.store, store.KeySettings, &s)
	return s, ok
}

// -----------------------------------------------------------------------------
// Saving
// -----------------------------------------------------------------------------

func (r *Repository) SaveTruco(m *truco.Match) {
	r.writer.Save(store.KeyTruco, m.Snapshot())
}

func (r *Repository) SaveCacheta(t *cacheta.Table) {
	r.writer.Save(store.KeyCacheta, t.Snapshot())
}

func (r *Repository) SaveFodinha(t *fodinha.Table) {
	r.writer.Save(store.KeyFodinha, t.Snapshot())
}

func (r *Repository) SaveSettings(s settings.Settings) {
	r.writer.Save(store.KeySettings, s)
}

// ClearAll queues the removal of every stored snapshot.
func (r *Repository) ClearAll() {
	for _, key := range store.Keys {
		r.writer.Delete(key)
	}
}
