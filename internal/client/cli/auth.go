package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/starmarket/internal/common"
)

// getSimpleText, getPassword, getInt and getMultiline are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getInt = GetInt
var getMultiline = GetMultiline

// requireLogin prints a hint and reports false when no session is active.
func (a *App) requireLogin() bool {
	if a.currentUser == nil {
		fmt.Println("Please log in first (login or register).")
		return false
	}
	return true
}

// Register prompts for a username plus optional contact fields and creates
// an account. On success the session is persisted and becomes active.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", os.Stdout)
	if err != nil {
		return err
	}
	telegram, err := getSimpleText(a.reader, "Telegram username (optional)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, username, email, telegram)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	a.setUser(user)
	fmt.Printf("Welcome, %s! Balance: %d stars\n", user.Username, user.Balance)
	return nil
}

// Login authenticates by username alone. No password is involved; identity
// is the username, as the auth service defines it.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrEmptyUsername) {
			fmt.Println("Username must not be empty.")
		} else {
			fmt.Println("Login failed:", err)
		}
		return err
	}

	a.setUser(user)
	fmt.Printf("Welcome, %s! Balance: %d stars\n", user.Username, user.Balance)
	return nil
}

// Refresh re-fetches the user record from the auth service, overwriting the
// cached copy with server truth.
func (a *App) Refresh(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	user, err := a.auth.Refresh(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Refresh failed:", err)
		return err
	}

	a.setUser(user)
	fmt.Printf("Balance: %d stars\n", user.Balance)
	return nil
}

// Logout clears the persisted session and the in-memory copy.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.setUser(nil)
	fmt.Println("Logged out.")
	return nil
}
