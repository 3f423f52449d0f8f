package domain

import "time"

// Priority classifies how urgent a task is. The set is closed; anything
// outside it still maps to a (minimal) reward.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Reward maps a priority to the points granted when a task with that
// priority is completed. Total: unknown priorities earn the floor reward.
func (p Priority) Reward() int {
	switch p {
	case PriorityHigh:
		return 50
	case PriorityMedium:
		return 30
	case PriorityLow:
		return 20
	default:
		return 10
	}
}

// Category groups tasks by life area.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther:
		return true
	default:
		return false
	}
}

// Task represents a user-owned activity item carrying a fixed point reward.
// ID, OwnerID, CreatedAt and PointsReward are assigned at creation and never
// change; Completed only ever flips false→true.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	Priority     Priority   `json:"priority"`
	Category     Category   `json:"category"`
	DueDate      *time.Time `json:"dueDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	OwnerID      string     `json:"userId"`
	PointsReward int        `json:"pointsReward"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}
