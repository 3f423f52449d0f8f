package task

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskquest/backend/domain"
	"github.com/taskquest/backend/pkg/latency"
	"github.com/taskquest/backend/repository"
)

// Draft carries the caller-controlled fields of a new task. Everything else
// (id, owner, creation time, reward) is assigned by the service.
type Draft struct {
	Title       string
	Description string
	Priority    domain.Priority
	Category    domain.Category
	DueDate     *time.Time
}

// Patch describes a partial update. Nil fields are left untouched.
// DueDateSet distinguishes "not provided" from "cleared": setting it with a
// nil DueDate removes the due date. Invariant-protected fields (id, owner,
// creation time, reward, completion) are not representable here at all.
type Patch struct {
	Title       *string
	Description *string
	Priority    *domain.Priority
	Category    *domain.Category
	DueDate     *time.Time
	DueDateSet  bool
}

// Service owns the task lifecycle. The collection lives in memory; every
// successful mutation replaces the persisted snapshot in full before the
// call returns, so readers never observe a partial write. Mutations are
// serialized by the lock to keep the no-lost-update property.
type Service struct {
	store  repository.SnapshotStore
	delay  latency.Strategy
	logger *zap.Logger

	mu    sync.RWMutex
	tasks []domain.Task

	now   func() time.Time
	newID func() string
}

// New loads the task collection from the snapshot store. A missing or
// undecodable record is not an empty start: the service seeds the fixed
// demo dataset and persists it, so a cold boot is always non-empty.
func New(ctx context.Context, store repository.SnapshotStore, delay latency.Strategy, logger *zap.Logger) (*Service, error) {
	if delay == nil {
		delay = latency.None()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		store:  store,
		delay:  delay,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	tasks, err := store.LoadTasks(ctx)
	switch {
	case err == nil:
		s.tasks = tasks
	case errors.Is(err, domain.ErrRecordNotFound) || domain.IsDomainError(err, domain.ErrCodeInternal):
		s.tasks = seedTasks(s.now())
		if err := store.SaveTasks(ctx, s.tasks); err != nil {
			return nil, domain.WrapError(domain.ErrCodeInternal, "persist seed dataset", err)
		}
		logger.Info("task collection seeded", zap.Int("tasks", len(s.tasks)))
	default:
		return nil, err
	}

	return s, nil
}

// Create registers a new task for the given owner. The point reward is fixed
// from the priority at creation and never changes afterwards.
func (s *Service) Create(ctx context.Context, ownerID string, draft Draft) (*domain.Task, error) {
	if ownerID == "" {
		return nil, domain.ErrAuthRequired
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	s.delay.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	created := domain.Task{
		ID:           s.newID(),
		Title:        draft.Title,
		Description:  draft.Description,
		Completed:    false,
		Priority:     draft.Priority,
		Category:     draft.Category,
		DueDate:      draft.DueDate,
		CreatedAt:    s.now(),
		OwnerID:      ownerID,
		PointsReward: draft.Priority.Reward(),
	}

	s.tasks = append(s.tasks, created)
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return nil, domain.WrapError(domain.ErrCodeInternal, "persist task collection", err)
	}

	s.logger.Info("task created",
		zap.String("task_id", created.ID),
		zap.String("owner_id", ownerID),
		zap.Int("points_reward", created.PointsReward))

	out := created
	return &out, nil
}

// Update applies the provided fields to an existing task.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*domain.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	s.delay.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	prev := s.tasks[idx]
	next := prev
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Priority != nil {
		next.Priority = *patch.Priority
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.DueDateSet {
		next.DueDate = patch.DueDate
	}

	s.tasks[idx] = next
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		s.tasks[idx] = prev
		return nil, domain.WrapError(domain.ErrCodeInternal, "persist task collection", err)
	}

	s.logger.Info("task updated", zap.String("task_id", id))

	out := next
	return &out, nil
}

// Delete removes a task. Deleting an unknown id is a no-op, not an error:
// the call is idempotent by contract.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.delay.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	prev := append([]domain.Task(nil), s.tasks...)
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		s.tasks = prev
		return domain.WrapError(domain.ErrCodeInternal, "persist task collection", err)
	}

	s.logger.Info("task deleted", zap.String("task_id", id))
	return nil
}

// Complete flips a task to completed and applies its reward. The task flip,
// the owner snapshot update and both persisted writes happen under one lock:
// either everything lands or the collection is restored to its prior state.
// The returned PointsDelta lets external consumers (the session provider)
// observe the reward that was applied.
func (s *Service) Complete(ctx context.Context, id string) (*domain.Task, *domain.PointsDelta, error) {
	s.delay.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil, domain.ErrTaskNotFound
	}
	if s.tasks[idx].Completed {
		return nil, nil, domain.ErrTaskCompleted
	}

	s.tasks[idx].Completed = true
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		s.tasks[idx].Completed = false
		return nil, nil, domain.WrapError(domain.ErrCodeInternal, "persist task collection", err)
	}

	completed := s.tasks[idx]
	delta := &domain.PointsDelta{
		OwnerID:    completed.OwnerID,
		Amount:     completed.PointsReward,
		TaskID:     completed.ID,
		OccurredAt: s.now(),
	}

	if err := s.applyReward(ctx, delta); err != nil {
		// Roll the flip back so the two aggregates cannot drift apart.
		s.tasks[idx].Completed = false
		if rerr := s.store.SaveTasks(ctx, s.tasks); rerr != nil {
			s.logger.Error("rollback of task completion failed", zap.String("task_id", id), zap.Error(rerr))
		}
		return nil, nil, err
	}

	s.logger.Info("task completed",
		zap.String("task_id", completed.ID),
		zap.String("owner_id", completed.OwnerID),
		zap.Int("points", delta.Amount))

	out := completed
	return &out, delta, nil
}

// applyReward credits the delta to the active user snapshot when it belongs
// to the completing owner. A missing snapshot is fine: the delta is still
// emitted and the external identity provider applies it on its side.
func (s *Service) applyReward(ctx context.Context, delta *domain.PointsDelta) error {
	user, err := s.store.LoadUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil
		}
		return domain.WrapError(domain.ErrCodeInternal, "load user snapshot", err)
	}
	if user.ID != delta.OwnerID {
		return nil
	}

	user.ApplyDelta(delta.Amount)
	if err := s.store.SaveUser(ctx, user); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "persist user snapshot", err)
	}

	s.logger.Info("reward applied",
		zap.String("owner_id", user.ID),
		zap.Int("points", user.Points),
		zap.Int("level", user.Level))
	return nil
}

// GetByID is a read-only probe: a miss returns nil without an error.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}
	out := s.tasks[idx]
	return &out, nil
}

// List returns the full collection in insertion order.
func (s *Service) List(ctx context.Context) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

// ListByOwner returns the owner's tasks in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Task
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
