package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskquest/backend/domain"
	"github.com/taskquest/backend/pkg/latency"
)

var errDiskFull = errors.New("disk full")

// fakeStore is an in-memory SnapshotStore with fault injection.
type fakeStore struct {
	user  *domain.User
	tasks []domain.Task

	hasTasks      bool
	failSaveTasks bool
	failSaveUser  bool
	saveTaskCalls int
}

func (f *fakeStore) LoadUser(ctx context.Context) (*domain.User, error) {
	if f.user == nil {
		return nil, domain.ErrRecordNotFound
	}
	u := *f.user
	return &u, nil
}

func (f *fakeStore) SaveUser(ctx context.Context, user *domain.User) error {
	if f.failSaveUser {
		return errDiskFull
	}
	u := *user
	f.user = &u
	return nil
}

func (f *fakeStore) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	if !f.hasTasks {
		return nil, domain.ErrRecordNotFound
	}
	return append([]domain.Task(nil), f.tasks...), nil
}

func (f *fakeStore) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	f.saveTaskCalls++
	if f.failSaveTasks {
		return errDiskFull
	}
	f.tasks = append([]domain.Task(nil), tasks...)
	f.hasTasks = true
	return nil
}

func newService(t *testing.T, store *fakeStore) *Service {
	t.Helper()
	svc, err := New(context.Background(), store, latency.None(), nil)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Run("cold start seeds the demo dataset", func(t *testing.T) {
		store := &fakeStore{}
		svc := newService(t, store)

		all := svc.List(context.Background())
		require.Len(t, all, 4)
		assert.Len(t, svc.ListByOwner(context.Background(), "1"), 2)
		assert.Len(t, svc.ListByOwner(context.Background(), "2"), 2)
		assert.True(t, store.hasTasks, "seed must be persisted immediately")

		completed := 0
		for _, task := range all {
			if task.Completed {
				completed++
			}
		}
		assert.Equal(t, 1, completed)
	})

	t.Run("existing collection is loaded, not reseeded", func(t *testing.T) {
		existing := []domain.Task{{ID: "x", Title: "kept", OwnerID: "9"}}
		store := &fakeStore{tasks: existing, hasTasks: true}
		svc := newService(t, store)

		all := svc.List(context.Background())
		require.Len(t, all, 1)
		assert.Equal(t, "kept", all[0].Title)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("computes the reward from the priority", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		created, err := svc.Create(ctx, "2", Draft{
			Title:    "Ship release",
			Priority: domain.PriorityHigh,
			Category: domain.CategoryWork,
		})

		require.NoError(t, err)
		assert.Equal(t, 50, created.PointsReward)
		assert.Equal(t, "2", created.OwnerID)
		assert.False(t, created.Completed)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("unknown priority falls back to the floor reward", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		created, err := svc.Create(ctx, "2", Draft{Title: "odd", Priority: "urgent"})

		require.NoError(t, err)
		assert.Equal(t, 10, created.PointsReward)
	})

	t.Run("requires an owner identity", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		_, err := svc.Create(ctx, "", Draft{Title: "orphan"})

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeAuthRequired))
	})

	t.Run("rejects a blank title", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		_, err := svc.Create(ctx, "2", Draft{Title: "   "})

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
	})

	t.Run("persist failure leaves the collection untouched", func(t *testing.T) {
		store := &fakeStore{}
		svc := newService(t, store)
		before := svc.List(ctx)

		store.failSaveTasks = true
		_, err := svc.Create(ctx, "2", Draft{Title: "doomed", Priority: domain.PriorityLow})

		require.Error(t, err)
		assert.Equal(t, before, svc.List(ctx))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		svc := newService(t, &fakeStore{})
		before, err := svc.GetByID(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, before)

		title := "Revised proposal"
		priority := domain.PriorityLow
		updated, err := svc.Update(ctx, "1", Patch{Title: &title, Priority: &priority})

		require.NoError(t, err)
		assert.Equal(t, "Revised proposal", updated.Title)
		assert.Equal(t, domain.PriorityLow, updated.Priority)
		assert.Equal(t, before.Description, updated.Description)

		// Invariant-protected fields survive any update.
		assert.Equal(t, before.ID, updated.ID)
		assert.Equal(t, before.OwnerID, updated.OwnerID)
		assert.Equal(t, before.CreatedAt, updated.CreatedAt)
		assert.Equal(t, before.PointsReward, updated.PointsReward)
		assert.Equal(t, before.Completed, updated.Completed)
	})

	t.Run("clears the due date when asked", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		updated, err := svc.Update(ctx, "1", Patch{DueDateSet: true, DueDate: nil})

		require.NoError(t, err)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		title := "nope"
		_, err := svc.Update(ctx, "missing", Patch{Title: &title})

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	})

	t.Run("rejects blanking the title", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		blank := "  "
		_, err := svc.Update(ctx, "1", Patch{Title: &blank})

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the task and persists", func(t *testing.T) {
		store := &fakeStore{}
		svc := newService(t, store)

		require.NoError(t, svc.Delete(ctx, "1"))

		got, err := svc.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Len(t, store.tasks, 3)
	})

	t.Run("deleting an unknown id is a no-op", func(t *testing.T) {
		store := &fakeStore{}
		svc := newService(t, store)
		calls := store.saveTaskCalls

		require.NoError(t, svc.Delete(ctx, "missing"))
		assert.Equal(t, calls, store.saveTaskCalls, "no snapshot write for a no-op")
	})

	t.Run("persist failure restores the collection", func(t *testing.T) {
		store := &fakeStore{}
		svc := newService(t, store)

		store.failSaveTasks = true
		err := svc.Delete(ctx, "1")

		require.Error(t, err)
		got, gerr := svc.GetByID(ctx, "1")
		require.NoError(t, gerr)
		assert.NotNil(t, got)
	})
}

func TestService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the task and applies the reward atomically", func(t *testing.T) {
		store := &fakeStore{user: &domain.User{ID: "1", Role: domain.RoleUser, Points: 80, Level: 1}}
		svc := newService(t, store)

		completed, delta, err := svc.Complete(ctx, "1")

		require.NoError(t, err)
		assert.True(t, completed.Completed)
		require.NotNil(t, delta)
		assert.Equal(t, "1", delta.OwnerID)
		assert.Equal(t, 50, delta.Amount)

		require.NotNil(t, store.user)
		assert.Equal(t, 130, store.user.Points)
		assert.Equal(t, 2, store.user.Level, "level recomputed with the applied delta")
	})

	t.Run("second completion conflicts and emits no event", func(t *testing.T) {
		store := &fakeStore{user: &domain.User{ID: "1", Role: domain.RoleUser}}
		svc := newService(t, store)

		_, _, err := svc.Complete(ctx, "1")
		require.NoError(t, err)
		pointsAfterFirst := store.user.Points

		_, delta, err := svc.Complete(ctx, "1")

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
		assert.Nil(t, delta)
		assert.Equal(t, pointsAfterFirst, store.user.Points, "no double reward")
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		_, _, err := svc.Complete(ctx, "missing")

		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	})

	t.Run("delta is emitted even when the snapshot belongs to someone else", func(t *testing.T) {
		store := &fakeStore{user: &domain.User{ID: "99", Role: domain.RoleUser, Points: 10}}
		svc := newService(t, store)

		_, delta, err := svc.Complete(ctx, "1")

		require.NoError(t, err)
		require.NotNil(t, delta)
		assert.Equal(t, "1", delta.OwnerID)
		assert.Equal(t, 10, store.user.Points, "foreign snapshot untouched")
	})

	t.Run("failed snapshot write rolls the completion back", func(t *testing.T) {
		store := &fakeStore{
			user:         &domain.User{ID: "1", Role: domain.RoleUser, Points: 80},
			failSaveUser: true,
		}
		svc := newService(t, store)

		_, _, err := svc.Complete(ctx, "1")

		require.Error(t, err)
		got, gerr := svc.GetByID(ctx, "1")
		require.NoError(t, gerr)
		assert.False(t, got.Completed, "flip rolled back in memory")
		for _, task := range store.tasks {
			if task.ID == "1" {
				assert.False(t, task.Completed, "flip rolled back on disk")
			}
		}
		assert.Equal(t, 80, store.user.Points)
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get miss returns nil without error", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		got, err := svc.GetByID(ctx, "missing")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by owner preserves insertion order", func(t *testing.T) {
		svc := newService(t, &fakeStore{})

		created, err := svc.Create(ctx, "2", Draft{Title: "newest", Priority: domain.PriorityLow})
		require.NoError(t, err)

		owned := svc.ListByOwner(ctx, "2")
		require.Len(t, owned, 3)
		assert.Equal(t, "3", owned[0].ID)
		assert.Equal(t, "4", owned[1].ID)
		assert.Equal(t, created.ID, owned[2].ID)
	})
}

func TestService_LatencyIsCosmetic(t *testing.T) {
	store := &fakeStore{}
	svc, err := New(context.Background(), store, latency.Fixed(time.Millisecond), nil)
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), "2", Draft{Title: "slow lane", Priority: domain.PriorityMedium})
	require.NoError(t, err)
	assert.Equal(t, 30, created.PointsReward)
}
