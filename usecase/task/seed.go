package task

import (
	"time"

	"github.com/taskquest/backend/domain"
)

func ptr(t time.Time) *time.Time { return &t }

// seedTasks is the fixed demo dataset written on a cold start: four tasks
// across two owners, one already completed. The literal reward values are
// part of the fixture and are kept as-is even where they differ from the
// priority table.
func seedTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:           "1",
			Title:        "Complete project proposal",
			Description:  "Draft and finalize the proposal for the new client project",
			Completed:    false,
			Priority:     domain.PriorityHigh,
			Category:     domain.CategoryWork,
			DueDate:      ptr(now.Add(2 * 24 * time.Hour)),
			CreatedAt:    now,
			OwnerID:      "1",
			PointsReward: 50,
		},
		{
			ID:           "2",
			Title:        "Morning workout",
			Description:  "30 minutes cardio and strength training",
			Completed:    true,
			Priority:     domain.PriorityMedium,
			Category:     domain.CategoryHealth,
			DueDate:      ptr(now),
			CreatedAt:    now.Add(-24 * time.Hour),
			OwnerID:      "1",
			PointsReward: 20,
		},
		{
			ID:           "3",
			Title:        "Read chapter 5",
			Description:  "Continue reading 'The Psychology of Money'",
			Completed:    false,
			Priority:     domain.PriorityLow,
			Category:     domain.CategoryPersonal,
			DueDate:      ptr(now.Add(5 * 24 * time.Hour)),
			CreatedAt:    now,
			OwnerID:      "2",
			PointsReward: 30,
		},
		{
			ID:           "4",
			Title:        "Team meeting",
			Description:  "Weekly sync with the development team",
			Completed:    false,
			Priority:     domain.PriorityMedium,
			Category:     domain.CategoryWork,
			DueDate:      ptr(now.Add(24 * time.Hour)),
			CreatedAt:    now,
			OwnerID:      "2",
			PointsReward: 40,
		},
	}
}
