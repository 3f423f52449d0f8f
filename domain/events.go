package domain

import "time"

// PointsDelta is emitted when a task is completed. The owning user's
// snapshot must absorb Amount with the same atomicity as the task flip;
// consumers that apply it separately accept a drift window.
type PointsDelta struct {
	OwnerID    string    `json:"ownerId"`
	Amount     int       `json:"amount"`
	TaskID     string    `json:"taskId"`
	OccurredAt time.Time `json:"occurredAt"`
}
