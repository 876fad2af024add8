package services

import (
	"context"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

type exchangeAPI interface {
	Companies(ctx context.Context) ([]models.Company, error)
	Portfolio(ctx context.Context, userID int64) ([]models.Position, error)
	PriceHistory(ctx context.Context, companyID int64) ([]models.PricePoint, error)
	Buy(ctx context.Context, userID, companyID, shares int64) error
	Sell(ctx context.Context, userID, companyID, shares int64) error
}

// ExchangeService wraps the exchange API. Trades are validated locally
// before any request leaves the process; everything else (balance and
// share sufficiency, price computation) is enforced server-side.
type ExchangeService interface {
	Companies(ctx context.Context) ([]models.Company, error)
	Portfolio(ctx context.Context, userID int64) ([]models.Position, error)
	PriceHistory(ctx context.Context, companyID int64) ([]models.PricePoint, error)
	Buy(ctx context.Context, userID, companyID, shares int64) error
	Sell(ctx context.Context, userID, companyID, shares int64) error
}

type exchangeService struct {
	api exchangeAPI
}

func NewExchangeService(api exchangeAPI) ExchangeService {
	return &exchangeService{api: api}
}

func (e *exchangeService) Companies(ctx context.Context) ([]models.Company, error) {
	return e.api.Companies(ctx)
}

func (e *exchangeService) Portfolio(ctx context.Context, userID int64) ([]models.Position, error) {
	return e.api.Portfolio(ctx, userID)
}

// PriceHistory returns the company's price history oldest-first. The server
// serves it newest-first; the order is reversed here so charts read
// left-to-right.
func (e *exchangeService) PriceHistory(ctx context.Context, companyID int64) ([]models.PricePoint, error) {
	history, err := e.api.PriceHistory(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// Buy submits a buy of the given share count at the current server price.
// A non-positive share count is rejected locally; no request is sent.
func (e *exchangeService) Buy(ctx context.Context, userID, companyID, shares int64) error {
	if shares <= 0 {
		return common.ErrInvalidShareCount
	}
	return e.api.Buy(ctx, userID, companyID, shares)
}

// Sell submits a sell of the given share count at the current server price.
// A non-positive share count is rejected locally; no request is sent.
func (e *exchangeService) Sell(ctx context.Context, userID, companyID, shares int64) error {
	if shares <= 0 {
		return common.ErrInvalidShareCount
	}
	return e.api.Sell(ctx, userID, companyID, shares)
}
