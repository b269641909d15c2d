package models

import "time"

type VerifyStatus string

const (
	// VerifyStatusCompleted means the reward was credited.
	VerifyStatusCompleted VerifyStatus = "completed"
	// VerifyStatusPending means the task awaits admin review.
	VerifyStatusPending VerifyStatus = "pending"
)

type VerifyResult struct {
	Status VerifyStatus `json:"status"`
	Reward int64        `json:"reward,omitempty"`
}

type CheckInResult struct {
	Reward      int64     `json:"reward"`
	CheckedInAt time.Time `json:"checked_in_at"`
}
