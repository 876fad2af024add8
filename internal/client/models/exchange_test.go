package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioTotals(t *testing.T) {
	positions := []Position{
		{Shares: 10, CurrentValue: 500, Profit: 50},
		{Shares: 3, CurrentValue: 360, Profit: -40},
	}

	value, profit, shares := PortfolioTotals(positions)
	assert.Equal(t, int64(860), value)
	assert.Equal(t, int64(10), profit)
	assert.Equal(t, int64(13), shares)
}

func TestPortfolioTotals_Empty(t *testing.T) {
	value, profit, shares := PortfolioTotals(nil)
	assert.Zero(t, value)
	assert.Zero(t, profit)
	assert.Zero(t, shares)
}

func TestGiftTransaction_SellerLabel(t *testing.T) {
	assert.Equal(t, "Store", GiftTransaction{}.SellerLabel())
	assert.Equal(t, "alice", GiftTransaction{SellerName: "alice"}.SellerLabel())
}
