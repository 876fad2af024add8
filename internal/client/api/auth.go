package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Register creates a new account. Email and telegramUsername are optional
// and omitted from the request body when empty.
func (c *Client) Register(ctx context.Context, username, email, telegramUsername string) (*models.User, error) {
	body := map[string]any{
		"action":   "register",
		"username": username,
	}
	if email != "" {
		body["email"] = email
	}
	if telegramUsername != "" {
		body["telegram_username"] = telegramUsername
	}

	var user models.User
	if err := c.send(ctx, http.MethodPost, c.endpoints.Auth, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by username and returns the server's user record.
func (c *Client) Login(ctx context.Context, username string) (*models.User, error) {
	body := map[string]any{
		"action":   "login",
		"username": username,
	}

	var user models.User
	if err := c.send(ctx, http.MethodPost, c.endpoints.Auth, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches the current user record by id. Used to refresh the cached
// balance after balance-affecting actions.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}

	var user models.User
	if err := c.get(ctx, c.endpoints.Auth, query, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
