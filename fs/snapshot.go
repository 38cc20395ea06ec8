// Package fs persists the document store as a single JSON snapshot
// with atomic update semantics.
package fs

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mbonnet/randoqa"
)

var _ randoqa.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore writes the whole store to one JSON file. Save writes a
// temporary file in the same directory and renames it over the final
// path, so readers never observe a partial snapshot.
type SnapshotStore struct {
	path   string
	logger *slog.Logger
}

// NewSnapshotStore creates a SnapshotStore persisting to path.
func NewSnapshotStore(path string, logger *slog.Logger) *SnapshotStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotStore{path: path, logger: logger}
}

// Save writes the full store atomically.
func (s *SnapshotStore) Save(ctx context.Context, store *randoqa.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}

	s.logger.Info("snapshot saved",
		slog.String("path", s.path),
		slog.Int("pages", len(store.Pages)),
		slog.Int("bytes", len(data)))
	return nil
}

// Load reads the snapshot back. A missing or corrupt file yields an
// empty store rather than an error, so startup never blocks on bad
// data. Site statistics are recomputed from the loaded pages.
func (s *SnapshotStore) Load(ctx context.Context) (*randoqa.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("snapshot unreadable, starting empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return randoqa.NewStore(), nil
	}

	store := randoqa.NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		s.logger.Warn("snapshot corrupt, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return randoqa.NewStore(), nil
	}
	if store.Pages == nil {
		store.Pages = []*randoqa.Page{}
	}

	store.SiteStats = randoqa.Aggregate(store.Pages)
	return store, nil
}
