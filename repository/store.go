package repository

import (
	"context"

	"github.com/taskquest/backend/domain"
)

// SnapshotStore is the persisted store adapter: durable key→serialized-record
// access to exactly two aggregates, the active user snapshot and the full
// task collection. Every mutation replaces the whole record; there is no
// partial-write state visible to readers.
//
// Load methods return domain.ErrRecordNotFound when the key has never been
// written. Decode failures surface as errors so callers can fall back to
// seeding instead of silently starting empty.
type SnapshotStore interface {
	LoadUser(ctx context.Context) (*domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error
}
