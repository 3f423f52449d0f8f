package domain

import "time"

// Role separates regular players from administrators. Administrators manage
// the platform and stay off the leaderboard.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is the snapshot of an identity as the gamification core sees it.
// The identity provider owns the record; the core only reads it and applies
// point deltas. Points never decrease, and Level is always derived from
// Points via the level table, never set independently.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApplyDelta adds a completion reward to the snapshot and recomputes the
// level from the new total. Negative amounts are ignored to keep Points
// monotonic.
func (u *User) ApplyDelta(amount int) {
	if u == nil || amount <= 0 {
		return
	}
	u.Points += amount
	u.Level = LevelFor(u.Points).Level
}
