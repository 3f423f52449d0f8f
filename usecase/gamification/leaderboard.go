package gamification

import (
	"sort"
	"time"

	"github.com/taskquest/backend/domain"
)

// roster is the fixed external set of sample players every leaderboard query
// starts from. The carried levels are part of the fixture, not recomputed.
var roster = []domain.User{
	{ID: "mock1", Email: "sarah@example.com", Name: "Sarah Johnson", Role: domain.RoleUser, Points: 1250, Level: 5, CreatedAt: rosterDate},
	{ID: "mock2", Email: "mike@example.com", Name: "Mike Smith", Role: domain.RoleUser, Points: 980, Level: 4, CreatedAt: rosterDate},
	{ID: "mock3", Email: "alex@example.com", Name: "Alex Wong", Role: domain.RoleUser, Points: 2350, Level: 6, CreatedAt: rosterDate},
	{ID: "mock4", Email: "taylor@example.com", Name: "Taylor Reed", Role: domain.RoleUser, Points: 420, Level: 3, CreatedAt: rosterDate},
}

var rosterDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Leaderboard ranks the fixed roster plus the current user (administrators
// stay off the board) by descending points. The sort is stable: equal point
// totals keep their insertion order. Nothing is persisted; every call
// recomputes the ranking.
func Leaderboard(current *domain.User) []domain.User {
	board := append([]domain.User(nil), roster...)
	if current != nil && current.Role == domain.RoleUser {
		board = append(board, *current)
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})
	return board
}
