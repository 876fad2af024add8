// Package session persists the single cached user record between CLI runs.
//
// The record is a JSON blob stored under a fixed key in a local SQLite
// key/value table. There is no schema versioning and no expiry; the record
// is overwritten with server-confirmed state after every mutation and
// removed on logout.
package session

import (
	"context"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Store is the persisted session record.
//
// Contract:
//   - Save overwrites the stored record with the given user.
//   - Load returns the stored record, or (nil, nil) when none is stored
//     or the stored blob is malformed.
//   - Clear removes the record; a subsequent Load returns (nil, nil).
type Store interface {
	Save(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}
