package models

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Withdrawal is a user's request to cash out STON to a TON wallet.
// Resolution is terminal: a request leaves pending exactly once.
type Withdrawal struct {
	ID            string `json:"id"`
	UserID        int64  `json:"user_id"`
	Amount        int64  `json:"amount"`
	WalletAddress string `json:"wallet_address"`
	Status        Status `json:"status"`

	// UserBalance is the balance snapshot at request time, kept for the
	// admin console; the actual debit re-checks the live balance.
	UserBalance int64 `json:"user_balance"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
}
