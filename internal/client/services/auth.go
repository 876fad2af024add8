package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/client/session"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

// authAPI is the slice of the API client the auth service needs.
type authAPI interface {
	Register(ctx context.Context, username, email, telegramUsername string) (*models.User, error)
	Login(ctx context.Context, username string) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// AuthService manages the authenticated session.
//
// Contract:
//   - Register / Login: authenticate against the auth service and persist
//     the returned record.
//   - Restore: return the persisted record from a previous run, if any.
//   - Refresh: re-fetch the record by id and overwrite the cached copy
//     (server truth wins).
//   - Logout: clear the persisted record.
type AuthService interface {
	Register(ctx context.Context, username, email, telegramUsername string) (*models.User, error)
	Login(ctx context.Context, username string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context, userID int64) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api   authAPI
	store session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(api authAPI, store session.Store) AuthService {
	return &authService{api: api, store: store}
}

// Register validates the username locally, creates the account and caches
// the returned record. An empty username is rejected without a request.
func (a *authService) Register(ctx context.Context, username, email, telegramUsername string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	user, err := a.api.Register(ctx, username, strings.TrimSpace(email), strings.TrimSpace(telegramUsername))
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and caches the returned record. An empty
// username is rejected without a request.
func (a *authService) Login(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	user, err := a.api.Login(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	return a.store.Load(ctx)
}

// Refresh re-fetches the user record and overwrites the cached copy.
func (a *authService) Refresh(ctx context.Context, userID int64) (*models.User, error) {
	user, err := a.api.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
