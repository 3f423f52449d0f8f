package domain

// Badge is a named achievement. Badges are derived facts recomputed from
// task history on every query; an earned set is never persisted.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Badge identifiers.
const (
	BadgeFirstTask    = "first-task"
	BadgeFiveTasks    = "five-tasks"
	BadgeLevelUp      = "level-up"
	BadgeStreak       = "streak-3"
	BadgeHighPriority = "high-priority"
)

// Badges is the fixed badge catalogue.
var Badges = []Badge{
	{ID: BadgeFirstTask, Name: "First Steps", Description: "Completed your first task"},
	{ID: BadgeFiveTasks, Name: "Getting Things Done", Description: "Completed 5 tasks"},
	{ID: BadgeLevelUp, Name: "Level Up", Description: "Reached level 2"},
	{ID: BadgeStreak, Name: "On Fire", Description: "Completed tasks for 3 days in a row"},
	{ID: BadgeHighPriority, Name: "Fire Fighter", Description: "Completed a high priority task"},
}

// BadgeByID looks a badge up in the catalogue.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
