package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// StoreGifts returns the static gift catalog.
func (c *Client) StoreGifts(ctx context.Context) ([]models.Gift, error) {
	query := url.Values{"action": {"store_gifts"}}

	var resp struct {
		envelope
		Gifts []models.Gift `json:"gifts"`
	}
	if err := c.get(ctx, c.endpoints.Marketplace, query, &resp); err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

// Listings returns all gifts currently offered for resale by other users.
func (c *Client) Listings(ctx context.Context) ([]models.Listing, error) {
	query := url.Values{"action": {"list"}}

	var resp struct {
		envelope
		Items []models.Listing `json:"items"`
	}
	if err := c.get(ctx, c.endpoints.Marketplace, query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// MyGifts returns all gift instances owned by the given user.
func (c *Client) MyGifts(ctx context.Context, userID int64) ([]models.OwnedGift, error) {
	query := url.Values{
		"action":  {"my_gifts"},
		"user_id": {strconv.FormatInt(userID, 10)},
	}

	var resp struct {
		envelope
		Gifts []models.OwnedGift `json:"gifts"`
	}
	if err := c.get(ctx, c.endpoints.Marketplace, query, &resp); err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

// GiftHistory returns the ownership history of one gift.
func (c *Client) GiftHistory(ctx context.Context, giftID int64) ([]models.GiftTransaction, error) {
	query := url.Values{
		"action":  {"history"},
		"gift_id": {strconv.FormatInt(giftID, 10)},
	}

	var resp struct {
		envelope
		History []models.GiftTransaction `json:"history"`
	}
	if err := c.get(ctx, c.endpoints.Marketplace, query, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// BuyFromStore purchases a catalog gift for the given user.
func (c *Client) BuyFromStore(ctx context.Context, userID, giftID int64) error {
	body := map[string]any{
		"action":  "buy_from_store",
		"user_id": userID,
		"gift_id": giftID,
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Marketplace, body, nil)
}

// BuyFromUser purchases a P2P listing; ownership transfers to the buyer.
func (c *Client) BuyFromUser(ctx context.Context, buyerID, userGiftID int64) error {
	body := map[string]any{
		"action":       "buy_from_user",
		"buyer_id":     buyerID,
		"user_gift_id": userGiftID,
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Marketplace, body, nil)
}

// ListForSale marks an owned gift as offered for resale at the given price.
func (c *Client) ListForSale(ctx context.Context, userGiftID, salePrice int64) error {
	body := map[string]any{
		"action":       "list_for_sale",
		"user_gift_id": userGiftID,
		"sale_price":   salePrice,
	}
	return c.send(ctx, http.MethodPut, c.endpoints.Marketplace, body, nil)
}

// CreateWithdrawal queues a withdrawal request for admin review.
func (c *Client) CreateWithdrawal(ctx context.Context, userID, amount int64, telegramUsername string) error {
	body := map[string]any{
		"action":            "create_withdrawal",
		"user_id":           userID,
		"amount":            amount,
		"telegram_username": telegramUsername,
	}
	return c.send(ctx, http.MethodPost, c.endpoints.Marketplace, body, nil)
}
