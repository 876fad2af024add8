package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

// MinWithdrawalStars is the client-side withdrawal floor (a UX guard; the
// marketplace service applies its own checks).
const MinWithdrawalStars = 100_000

type marketAPI interface {
	StoreGifts(ctx context.Context) ([]models.Gift, error)
	Listings(ctx context.Context) ([]models.Listing, error)
	MyGifts(ctx context.Context, userID int64) ([]models.OwnedGift, error)
	GiftHistory(ctx context.Context, giftID int64) ([]models.GiftTransaction, error)
	BuyFromStore(ctx context.Context, userID, giftID int64) error
	BuyFromUser(ctx context.Context, buyerID, userGiftID int64) error
	ListForSale(ctx context.Context, userGiftID, salePrice int64) error
	CreateWithdrawal(ctx context.Context, userID, amount int64, telegramUsername string) error
}

// MarketService covers the gift store, the P2P resale market, and
// withdrawal requests.
type MarketService interface {
	StoreGifts(ctx context.Context) ([]models.Gift, error)
	Listings(ctx context.Context) ([]models.Listing, error)
	MyGifts(ctx context.Context, userID int64) ([]models.OwnedGift, error)
	History(ctx context.Context, giftID int64) ([]models.GiftTransaction, error)
	BuyFromStore(ctx context.Context, userID, giftID int64) error
	BuyFromUser(ctx context.Context, buyerID, userGiftID int64) error
	ListForSale(ctx context.Context, userGiftID, salePrice int64) error
	Withdraw(ctx context.Context, userID, amount int64, telegramUsername string) error
}

type marketService struct {
	api marketAPI
}

func NewMarketService(api marketAPI) MarketService {
	return &marketService{api: api}
}

func (m *marketService) StoreGifts(ctx context.Context) ([]models.Gift, error) {
	return m.api.StoreGifts(ctx)
}

func (m *marketService) Listings(ctx context.Context) ([]models.Listing, error) {
	return m.api.Listings(ctx)
}

func (m *marketService) MyGifts(ctx context.Context, userID int64) ([]models.OwnedGift, error) {
	return m.api.MyGifts(ctx, userID)
}

func (m *marketService) History(ctx context.Context, giftID int64) ([]models.GiftTransaction, error) {
	return m.api.GiftHistory(ctx, giftID)
}

func (m *marketService) BuyFromStore(ctx context.Context, userID, giftID int64) error {
	return m.api.BuyFromStore(ctx, userID, giftID)
}

func (m *marketService) BuyFromUser(ctx context.Context, buyerID, userGiftID int64) error {
	return m.api.BuyFromUser(ctx, buyerID, userGiftID)
}

// ListForSale offers an owned gift for resale. A non-positive price is
// rejected locally; no request is sent.
func (m *marketService) ListForSale(ctx context.Context, userGiftID, salePrice int64) error {
	if salePrice <= 0 {
		return common.ErrInvalidPrice
	}
	return m.api.ListForSale(ctx, userGiftID, salePrice)
}

// Withdraw queues a withdrawal request. The 100 000 star floor and the
// telegram handle are checked locally; below the floor no request is sent.
func (m *marketService) Withdraw(ctx context.Context, userID, amount int64, telegramUsername string) error {
	if amount < MinWithdrawalStars {
		return common.ErrInvalidAmount
	}
	if strings.TrimSpace(telegramUsername) == "" {
		return common.ErrEmptyTelegram
	}
	return m.api.CreateWithdrawal(ctx, userID, amount, telegramUsername)
}
