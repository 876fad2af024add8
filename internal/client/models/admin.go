package models

// Stats is the aggregate platform view served to admins.
type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalBalance       int64 `json:"total_balance"`
	TotalTransactions  int64 `json:"total_transactions"`
	PendingWithdrawals int64 `json:"pending_withdrawals"`
}

// Withdrawal is a user request to convert stars to real currency, queued
// for admin review.
type Withdrawal struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	Username         string `json:"username,omitempty"`
	Balance          int64  `json:"balance,omitempty"`
	Amount           int64  `json:"amount"`
	TelegramUsername string `json:"telegram_username,omitempty"`
	Status           string `json:"status"`
	AdminComment     string `json:"admin_comment,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}
