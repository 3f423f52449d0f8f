package gamification

import "github.com/taskquest/backend/domain"

// BadgesFor recomputes the earned-badge set from the owner's task history and
// user snapshot. Pure: no stored badge state anywhere, so calling it twice
// with the same inputs yields the same badges in the same order. The result
// order follows rule evaluation order, not catalogue order.
func BadgesFor(ownerID string, tasks []domain.Task, snapshot *domain.User) []domain.Badge {
	if ownerID == "" {
		return nil
	}

	var completed int
	var highPriorityDone bool
	for _, t := range tasks {
		if t.OwnerID != ownerID || !t.Completed {
			continue
		}
		completed++
		if t.Priority == domain.PriorityHigh {
			highPriorityDone = true
		}
	}

	var earned []domain.Badge
	add := func(id string) {
		if b, ok := domain.BadgeByID(id); ok {
			earned = append(earned, b)
		}
	}

	if completed >= 1 {
		add(domain.BadgeFirstTask)
	}
	if completed >= 5 {
		add(domain.BadgeFiveTasks)
	}
	if highPriorityDone {
		add(domain.BadgeHighPriority)
	}
	if snapshot != nil && snapshot.Level >= 2 {
		add(domain.BadgeLevelUp)
	}

	// The streak badge is granted unconditionally. This reproduces the
	// shipped behavior; there is no consecutive-day tracking behind it.
	add(domain.BadgeStreak)

	return earned
}
