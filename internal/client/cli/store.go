package cli

import (
	"context"
	"fmt"
	"os"
)

// Store lists the gift store catalog.
func (a *App) Store(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	gifts, err := a.market.StoreGifts(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(gifts) == 0 {
		fmt.Println("The store is empty.")
		return nil
	}

	for _, g := range gifts {
		fmt.Printf("#%d %s %s — %d stars", g.ID, g.Image, g.Name, g.Price)
		if g.Category != "" {
			fmt.Printf(" [%s]", g.Category)
		}
		fmt.Println()
	}
	return nil
}

// BuyStore purchases a gift from the store at its fixed price. The balance
// check happens server-side; the session is refreshed afterwards.
func (a *App) BuyStore(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	giftID, err := getInt(a.reader, "Gift id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if err := a.market.BuyFromStore(ctx, a.currentUser.ID, giftID); err != nil {
		fmt.Println("Purchase failed:", err)
		return err
	}

	fmt.Println("Purchased!")
	return a.Refresh(ctx)
}
