package randoqa

import "context"

// SnapshotStore persists the document store as a single serialized
// snapshot written atomically.
type SnapshotStore interface {
	// Save writes the full store. Partial writes are never visible.
	Save(ctx context.Context, store *Store) error

	// Load reads the full store back. A missing or corrupt snapshot
	// yields an empty store rather than an error so startup never
	// blocks on bad data.
	Load(ctx context.Context) (*Store, error)
}
