package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Companies returns all tradable companies with current prices and percent
// changes.
func (c *Client) Companies(ctx context.Context) ([]models.Company, error) {
	query := url.Values{"action": {"companies"}}

	var resp struct {
		envelope
		Companies []models.Company `json:"companies"`
	}
	if err := c.get(ctx, c.endpoints.Exchange, query, &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

// Portfolio returns the user's open positions with server-derived valuation.
func (c *Client) Portfolio(ctx context.Context, userID int64) ([]models.Position, error) {
	query := url.Values{
		"action":  {"portfolio"},
		"user_id": {strconv.FormatInt(userID, 10)},
	}

	var resp struct {
		envelope
		Portfolio []models.Position `json:"portfolio"`
	}
	if err := c.get(ctx, c.endpoints.Exchange, query, &resp); err != nil {
		return nil, err
	}
	return resp.Portfolio, nil
}

// PriceHistory returns past prices of one company in the raw server order,
// which is newest-first.
func (c *Client) PriceHistory(ctx context.Context, companyID int64) ([]models.PricePoint, error) {
	query := url.Values{
		"action":     {"price_history"},
		"company_id": {strconv.FormatInt(companyID, 10)},
	}

	var resp struct {
		envelope
		History []models.PricePoint `json:"history"`
	}
	if err := c.get(ctx, c.endpoints.Exchange, query, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// Buy purchases shares at the current server price.
func (c *Client) Buy(ctx context.Context, userID, companyID, shares int64) error {
	return c.trade(ctx, "buy", userID, companyID, shares)
}

// Sell sells shares at the current server price.
func (c *Client) Sell(ctx context.Context, userID, companyID, shares int64) error {
	return c.trade(ctx, "sell", userID, companyID, shares)
}

func (c *Client) trade(ctx context.Context, action string, userID, companyID, shares int64) error {
	body := map[string]any{
		"action":     action,
		"user_id":    userID,
		"company_id": companyID,
		"shares":     shares,
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Exchange, body, nil)
}
