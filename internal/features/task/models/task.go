package models

import "time"

// Type tags what a task asks the user to do and which flow credits it.
type Type string

const (
	TypeTelegramJoin  Type = "telegram_join"
	TypeTwitterFollow Type = "twitter_follow"
	TypeVisitSite     Type = "visit_site"
	TypeDailyCheckIn  Type = "daily_checkin"
	TypeReferral      Type = "referral"
)

// VerificationType selects the completion path: auto tasks credit on
// verification by the ledger, manual tasks queue for admin review.
type VerificationType string

const (
	VerificationAuto   VerificationType = "auto"
	VerificationManual VerificationType = "manual"
)

// Task is an operator-defined, reward-bearing unit of work.
type Task struct {
	ID          string `json:"id" example:"join_skyton_channel"`
	Title       string `json:"title" example:"Join our channel"`
	Description string `json:"description,omitempty"`
	// Target is what the task points at: a channel handle for joins, a
	// URL for visits, a profile for follows.
	Target string `json:"target" example:"@skyton"`

	Reward           int64            `json:"reward" example:"50"`
	Type             Type             `json:"type" example:"telegram_join"`
	VerificationType VerificationType `json:"verification_type" example:"auto"`

	// Inactive tasks are hidden from users but stay resolvable for
	// historical completions.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t Type) Valid() bool {
	switch t {
	case TypeTelegramJoin, TypeTwitterFollow, TypeVisitSite, TypeDailyCheckIn, TypeReferral:
		return true
	}
	return false
}

func (v VerificationType) Valid() bool {
	return v == VerificationAuto || v == VerificationManual
}
