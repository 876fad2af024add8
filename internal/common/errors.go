// Package common defines shared constants and sentinel errors used across
// the Star Market client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// Local validation errors. These short-circuit before any request
	// is sent to the remote services.
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyTelegram     = errors.New("telegram username is required")
	ErrInvalidShareCount = errors.New("share count must be a positive integer")
	ErrInvalidPrice      = errors.New("price must be a positive number")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInvalidReward     = errors.New("reward must be a positive number")
	ErrEmptyTitle        = errors.New("title is required")

	// Balance errors detected against the locally cached record
	// (roulette only; everything else is enforced server-side).
	ErrInsufficientStars = errors.New("not enough stars")

	// Admin gate errors.
	ErrAccessDenied = errors.New("access denied")
)
