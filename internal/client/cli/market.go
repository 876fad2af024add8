package cli

import (
	"context"
	"fmt"
	"os"
)

// Market lists gifts other users have put up for resale.
func (a *App) Market(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	listings, err := a.market.Listings(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(listings) == 0 {
		fmt.Println("Nothing is on sale right now.")
		return nil
	}

	for _, l := range listings {
		fmt.Printf("#%d %s %s — %d stars (seller: %s, %d previous sales)\n",
			l.UserGiftID, l.ImageEmoji, l.Name, l.SalePrice, l.SellerName, l.TransactionCount)
	}
	return nil
}

// BuyMarket purchases a listed gift from its current owner.
func (a *App) BuyMarket(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	userGiftID, err := getInt(a.reader, "Listing id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if err := a.market.BuyFromUser(ctx, a.currentUser.ID, userGiftID); err != nil {
		fmt.Println("Purchase failed:", err)
		return err
	}

	fmt.Println("Purchased!")
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	return a.Market(ctx)
}

// History prints a gift's ownership chain, oldest entry first.
func (a *App) History(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	giftID, err := getInt(a.reader, "Gift id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	transactions, err := a.market.History(ctx, giftID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions for this gift.")
		return nil
	}

	for _, t := range transactions {
		fmt.Printf("%s: %s -> %s for %d stars\n", t.CreatedAt, t.SellerLabel(), t.BuyerName, t.Price)
	}
	return nil
}

// Gifts lists the gifts the user owns, marking those already on sale.
func (a *App) Gifts(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	gifts, err := a.market.MyGifts(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(gifts) == 0 {
		fmt.Println("You don't own any gifts yet.")
		return nil
	}

	for _, g := range gifts {
		fmt.Printf("#%d %s %s (bought for %d stars)", g.ID, g.ImageEmoji, g.Name, g.PurchasePrice)
		if g.IsOnSale {
			fmt.Printf(" — on sale for %d stars", g.SalePrice)
		}
		fmt.Println()
	}
	return nil
}

// SellGift puts an owned gift up for resale at a user-chosen price.
func (a *App) SellGift(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	userGiftID, err := getInt(a.reader, "Owned gift id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	price, err := getInt(a.reader, "Sale price (stars)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if err := a.market.ListForSale(ctx, userGiftID, price); err != nil {
		fmt.Println("Listing failed:", err)
		return err
	}

	fmt.Println("Listed for sale.")
	return nil
}
