package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

// Exchange lists the tradable companies and the user's current portfolio.
func (a *App) Exchange(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	companies, err := a.exchange.Companies(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	for _, c := range companies {
		fmt.Printf("#%d %-6s %s — %d stars (%+.2f%%)\n", c.ID, c.Ticker, c.Name, c.CurrentPrice, c.ChangePercent)
	}

	positions, err := a.exchange.Portfolio(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(positions) == 0 {
		fmt.Println("Portfolio: empty")
		return nil
	}

	fmt.Println("Portfolio:")
	for _, p := range positions {
		fmt.Printf("  %-6s %d shares, avg %d, now %d, value %d (%+d)\n",
			p.Ticker, p.Shares, p.AverageBuyPrice, p.CurrentPrice, p.CurrentValue, p.Profit)
	}
	value, profit, shares := models.PortfolioTotals(positions)
	fmt.Printf("Total: %d shares, value %d stars (%+d)\n", shares, value, profit)
	return nil
}

// BuyShares purchases shares at the current server price.
func (a *App) BuyShares(ctx context.Context) error {
	return a.trade(ctx, "buy")
}

// SellShares sells shares at the current server price.
func (a *App) SellShares(ctx context.Context) error {
	return a.trade(ctx, "sell")
}

func (a *App) trade(ctx context.Context, direction string) error {
	if !a.requireLogin() {
		return nil
	}

	companyID, err := getInt(a.reader, "Company id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	shares, err := getInt(a.reader, "Number of shares", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if direction == "buy" {
		err = a.exchange.Buy(ctx, a.currentUser.ID, companyID, shares)
	} else {
		err = a.exchange.Sell(ctx, a.currentUser.ID, companyID, shares)
	}
	if err != nil {
		fmt.Println("Trade failed:", err)
		return err
	}

	fmt.Println("Done!")
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	// Reload the full panel so prices and holdings reflect the trade.
	return a.Exchange(ctx)
}

// Chart prints a company's price history, oldest first, as a bar per point.
func (a *App) Chart(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	companyID, err := getInt(a.reader, "Company id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	history, err := a.exchange.PriceHistory(ctx, companyID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(history) == 0 {
		fmt.Println("No price history.")
		return nil
	}

	var max int64
	for _, p := range history {
		if p.Price > max {
			max = p.Price
		}
	}

	for _, p := range history {
		width := 0
		if max > 0 {
			width = int(p.Price * 40 / max)
		}
		fmt.Printf("%s %6d %s\n", p.RecordedAt, p.Price, strings.Repeat("#", width))
	}
	return nil
}
