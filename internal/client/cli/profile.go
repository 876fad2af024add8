package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/client/services"
)

// Profile prints the cached user record plus display totals over owned
// gifts and stock holdings. The totals are client-side sums only.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	u := a.currentUser
	fmt.Printf("Username: %s (id %d)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Printf("Email:    %s\n", u.Email)
	}
	if u.TelegramUsername != "" {
		fmt.Printf("Telegram: @%s\n", u.TelegramUsername)
	}
	fmt.Printf("Balance:  %d stars\n", u.Balance)
	if u.HasAdminRole() {
		fmt.Println("Role:     admin")
	}

	if gifts, err := a.market.MyGifts(ctx, u.ID); err == nil {
		var giftValue int64
		for _, g := range gifts {
			giftValue += g.PurchasePrice
		}
		fmt.Printf("Gifts:    %d owned, %d stars spent\n", len(gifts), giftValue)
	}

	if positions, err := a.exchange.Portfolio(ctx, u.ID); err == nil && len(positions) > 0 {
		value, profit, shares := models.PortfolioTotals(positions)
		fmt.Printf("Stocks:   %d shares, value %d stars (%+d)\n", shares, value, profit)
	}
	return nil
}

// Withdraw queues a withdrawal request. The minimum amount and the telegram
// handle are validated before anything is sent.
func (a *App) Withdraw(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	fmt.Printf("Minimum withdrawal: %d stars. Your balance: %d stars.\n",
		services.MinWithdrawalStars, a.currentUser.Balance)

	amount, err := getInt(a.reader, "Amount (stars)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	telegram := a.currentUser.TelegramUsername
	if telegram == "" {
		telegram, err = getSimpleText(a.reader, "Telegram username for payout", os.Stdout)
		if err != nil {
			return err
		}
	}

	if err := a.market.Withdraw(ctx, a.currentUser.ID, amount, telegram); err != nil {
		fmt.Println("Withdrawal failed:", err)
		return err
	}

	fmt.Println("Withdrawal request queued for review.")
	return a.Refresh(ctx)
}
