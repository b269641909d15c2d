package models

import "time"

// PendingVerification is one row of the admin review queue: a (user, task)
// pair awaiting a decision, with the display fields snapshotted when the
// user requested review.
type PendingVerification struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	TaskID      string    `json:"task_id"`
	TaskTitle   string    `json:"task_title"`
	TaskTarget  string    `json:"task_target"`
	Reward      int64     `json:"reward"`
	RequestedAt time.Time `json:"requested_at"`
}
