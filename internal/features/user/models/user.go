package models

import "time"

const (
	// DefaultBalance is the STON balance every new account starts with.
	DefaultBalance = 100
	// DefaultEnergy is the starting energy pool.
	DefaultEnergy = 1000
	// MaxEnergy bounds the energy pool; refills never exceed it.
	MaxEnergy = 1000
)

// Identity is the trusted tuple the Telegram launch-parameter layer hands us.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

// PendingTask is the display snapshot stored alongside a manual
// verification request, so admins see the task as it was when requested
// even if the catalog entry is later edited or deleted.
type PendingTask struct {
	Title       string    `json:"title"`
	Target      string    `json:"target"`
	Reward      int64     `json:"reward"`
	RequestedAt time.Time `json:"requested_at"`
}

// User is the per-user document.
//
// Invariants the reward ledger maintains:
//   - Balance never goes negative; it moves only by reward credits and
//     withdrawal debits.
//   - Tasks entries are monotonic: once true a flag never reverts.
//   - A task id is never present in both Tasks and Pending at once.
//   - Referrals always equals len(ReferredUsers).
//   - InvitedBy is set at creation and never mutated.
type User struct {
	ID        int64  `json:"id" example:"123456789"`
	Username  string `json:"username" example:"johndoe"`
	FirstName string `json:"first_name" example:"John"`
	LastName  string `json:"last_name" example:"Doe"`
	PhotoURL  string `json:"photo_url,omitempty"`

	Balance int64 `json:"balance" example:"100"`
	Energy  int64 `json:"energy" example:"1000"`

	Referrals     int64   `json:"referrals"`
	ReferredUsers []int64 `json:"referred_users,omitempty"`
	InvitedBy     *int64  `json:"invited_by,omitempty"`

	Tasks   map[string]bool        `json:"tasks,omitempty"`
	Pending map[string]PendingTask `json:"pending_verification_tasks,omitempty"`

	LastCheckIn *time.Time `json:"last_check_in,omitempty"`

	IsBanned bool    `json:"is_banned"`
	IsAdmin  bool    `json:"is_admin"`
	Wallet   *string `json:"wallet,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns the default snapshot every account is created from.
func New(identity Identity, invitedBy *int64) *User {
	now := time.Now()
	return &User{
		ID:        identity.ID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		PhotoURL:  identity.PhotoURL,
		Balance:   DefaultBalance,
		Energy:    DefaultEnergy,
		InvitedBy: invitedBy,
		Tasks:     map[string]bool{},
		Pending:   map[string]PendingTask{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TaskCompleted reports whether the task flag is set.
func (u *User) TaskCompleted(taskID string) bool {
	return u.Tasks[taskID]
}

// TaskPending reports whether the task awaits manual review.
func (u *User) TaskPending(taskID string) bool {
	_, ok := u.Pending[taskID]
	return ok
}
