package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Admin calls all carry the caller's admin_id; the admin service re-checks
// the admin flag on every request. The client-side gate is only navigation.

// AdminStats returns aggregate platform statistics.
func (c *Client) AdminStats(ctx context.Context, adminID int64) (*models.Stats, error) {
	query := adminQuery(adminID, "stats")

	var resp struct {
		envelope
		Stats models.Stats `json:"stats"`
	}
	if err := c.get(ctx, c.endpoints.Admin, query, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// AdminWithdrawals returns all withdrawal requests, newest first.
func (c *Client) AdminWithdrawals(ctx context.Context, adminID int64) ([]models.Withdrawal, error) {
	query := adminQuery(adminID, "withdrawals")

	var resp struct {
		envelope
		Withdrawals []models.Withdrawal `json:"withdrawals"`
	}
	if err := c.get(ctx, c.endpoints.Admin, query, &resp); err != nil {
		return nil, err
	}
	return resp.Withdrawals, nil
}

// AdminUsers returns the user list ordered by balance.
func (c *Client) AdminUsers(ctx context.Context, adminID int64) ([]models.User, error) {
	query := adminQuery(adminID, "users")

	var resp struct {
		envelope
		Users []models.User `json:"users"`
	}
	if err := c.get(ctx, c.endpoints.Admin, query, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// AdminAddBalance applies a manual balance adjustment to a user.
func (c *Client) AdminAddBalance(ctx context.Context, adminID, userID, amount int64, reason string) error {
	body := map[string]any{
		"action":   "add_balance",
		"admin_id": adminID,
		"user_id":  userID,
		"amount":   amount,
	}
	if reason != "" {
		body["reason"] = reason
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Admin, body, nil)
}

// AdminAddTask creates a new manual task.
func (c *Client) AdminAddTask(ctx context.Context, adminID int64, title, description string, reward int64) error {
	body := map[string]any{
		"action":      "add_task",
		"admin_id":    adminID,
		"title":       title,
		"description": description,
		"reward":      reward,
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Admin, body, nil)
}

// AdminProcessWithdrawal approves or rejects a pending withdrawal request.
func (c *Client) AdminProcessWithdrawal(ctx context.Context, adminID, withdrawalID int64, status, comment string) error {
	body := map[string]any{
		"action":        "process_withdrawal",
		"admin_id":      adminID,
		"withdrawal_id": withdrawalID,
		"status":        status,
	}
	if comment != "" {
		body["comment"] = comment
	}
	return c.send(ctx, http.MethodPut, c.endpoints.Admin, body, nil)
}

func adminQuery(adminID int64, action string) url.Values {
	return url.Values{
		"action":   {action},
		"admin_id": {strconv.FormatInt(adminID, 10)},
	}
}
