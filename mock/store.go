package mock

import (
	"context"

	"github.com/mbonnet/randoqa"
)

var _ randoqa.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of randoqa.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(ctx context.Context, store *randoqa.Store) error
	LoadFn func(ctx context.Context) (*randoqa.Store, error)
}

func (s *SnapshotStore) Save(ctx context.Context, store *randoqa.Store) error {
	return s.SaveFn(ctx, store)
}

func (s *SnapshotStore) Load(ctx context.Context) (*randoqa.Store, error) {
	return s.LoadFn(ctx)
}
