// Package models defines client-side copies of the entities owned by the
// Star Market services. All fields mirror the JSON the services return;
// nothing here is authoritative; the server record always wins.
package models

// User is the denormalized session user record. It is created by the auth
// service on register/login, cached locally between runs, and overwritten
// with server-confirmed state after every balance-affecting action.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email,omitempty"`
	TelegramID       int64  `json:"telegram_id,omitempty"`
	TelegramUsername string `json:"telegram_username,omitempty"`
	Balance          int64  `json:"balance"`
	Role             string `json:"role,omitempty"`
	IsAdmin          bool   `json:"is_admin,omitempty"`

	// CreatedAt is kept as the opaque string the auth service emits
	// (Python isoformat, not RFC 3339).
	CreatedAt string `json:"created_at,omitempty"`
}

// HasAdminRole reports whether the cached record is flagged as an admin.
// This is a navigation guard only; real authorization happens server-side
// on every admin call.
func (u *User) HasAdminRole() bool {
	return u.IsAdmin || u.Role == "admin"
}
