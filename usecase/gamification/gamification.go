// Package gamification derives points, levels, badges and rankings from task
// history. Everything here is a read-side projection: it holds no state of
// its own and recomputes from the task collection and the user snapshot on
// every query.
package gamification

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/taskquest/backend/domain"
	"github.com/taskquest/backend/repository"
)

// Service answers gamification queries against the active user snapshot.
type Service struct {
	store  repository.SnapshotStore
	logger *zap.Logger
}

func New(store repository.SnapshotStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// RewardForPriority exposes the fixed priority→points table.
func (s *Service) RewardForPriority(p domain.Priority) int {
	return p.Reward()
}

// Level resolves the bracket for a point total.
func (s *Service) Level(points int) domain.LevelDefinition {
	return domain.LevelFor(points)
}

// Progress reports how far a point total is through its bracket.
func (s *Service) Progress(points int) domain.LevelProgress {
	return domain.ProgressFor(points)
}

// Badges evaluates the earned-badge set for an owner against the given task
// history. When ownerID is empty the active snapshot's owner is used.
func (s *Service) Badges(ctx context.Context, ownerID string, tasks []domain.Task) ([]domain.Badge, error) {
	snapshot, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if ownerID == "" {
		if snapshot == nil {
			return nil, nil
		}
		ownerID = snapshot.ID
	}
	return BadgesFor(ownerID, tasks, snapshot), nil
}

// Ranking returns the leaderboard including the active user when they hold
// the non-privileged role.
func (s *Service) Ranking(ctx context.Context) ([]domain.User, error) {
	snapshot, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return Leaderboard(snapshot), nil
}

func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.store.LoadUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Warn("failed to load user snapshot", zap.Error(err))
		return nil, err
	}
	return user, nil
}
