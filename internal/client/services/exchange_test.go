package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

type fakeExchangeAPI struct {
	buyCalls  int
	sellCalls int
	history   []models.PricePoint
}

func (f *fakeExchangeAPI) Companies(ctx context.Context) ([]models.Company, error) {
	return nil, nil
}

func (f *fakeExchangeAPI) Portfolio(ctx context.Context, userID int64) ([]models.Position, error) {
	return nil, nil
}

func (f *fakeExchangeAPI) PriceHistory(ctx context.Context, companyID int64) ([]models.PricePoint, error) {
	return f.history, nil
}

func (f *fakeExchangeAPI) Buy(ctx context.Context, userID, companyID, shares int64) error {
	f.buyCalls++
	return nil
}

func (f *fakeExchangeAPI) Sell(ctx context.Context, userID, companyID, shares int64) error {
	f.sellCalls++
	return nil
}

func TestExchangeService_BuyRejectsNonPositiveShares(t *testing.T) {
	tests := []struct {
		name   string
		shares int64
	}{
		{"zero", 0},
		{"negative", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeExchangeAPI{}
			svc := NewExchangeService(api)

			err := svc.Buy(context.Background(), 1, 2, tt.shares)
			assert.ErrorIs(t, err, common.ErrInvalidShareCount)
			assert.Equal(t, 0, api.buyCalls, "no request should be sent")
		})
	}
}

func TestExchangeService_SellRejectsNonPositiveShares(t *testing.T) {
	api := &fakeExchangeAPI{}
	svc := NewExchangeService(api)

	err := svc.Sell(context.Background(), 1, 2, 0)
	assert.ErrorIs(t, err, common.ErrInvalidShareCount)
	assert.Equal(t, 0, api.sellCalls)
}

func TestExchangeService_BuyPassesThrough(t *testing.T) {
	api := &fakeExchangeAPI{}
	svc := NewExchangeService(api)

	require.NoError(t, svc.Buy(context.Background(), 1, 2, 10))
	assert.Equal(t, 1, api.buyCalls)
}

func TestExchangeService_PriceHistoryOldestFirst(t *testing.T) {
	api := &fakeExchangeAPI{history: []models.PricePoint{
		{Price: 300}, // newest
		{Price: 200},
		{Price: 100}, // oldest
	}}
	svc := NewExchangeService(api)

	history, err := svc.PriceHistory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(100), history[0].Price)
	assert.Equal(t, int64(200), history[1].Price)
	assert.Equal(t, int64(300), history[2].Price)
}
