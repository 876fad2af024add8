package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Tasks returns the active task list with per-user completion flags.
func (c *Client) Tasks(ctx context.Context, userID int64) ([]models.Task, error) {
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}

	var resp struct {
		envelope
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.get(ctx, c.endpoints.Tasks, query, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// VerifyTask submits a task for verification. telegramUserID is optional
// (used for telegram_subscribe tasks) and omitted when zero.
func (c *Client) VerifyTask(ctx context.Context, userID, taskID, telegramUserID int64) (*models.VerifyResult, error) {
	body := map[string]any{
		"action":  "verify",
		"user_id": userID,
		"task_id": taskID,
	}
	if telegramUserID != 0 {
		body["telegram_user_id"] = telegramUserID
	}

	var result models.VerifyResult
	if err := c.send(ctx, http.MethodPost, c.endpoints.Tasks, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
