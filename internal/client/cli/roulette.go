package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/starmarket/internal/client/services"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

// Roulette spins the wheel once. The stake and prize apply to the cached
// balance only; no remote service is involved.
func (a *App) Roulette(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	fmt.Printf("Stake: %d stars. Spinning...\n", services.RouletteStake)

	result, err := a.roulette.Spin(ctx)
	if err != nil {
		if errors.Is(err, common.ErrInsufficientStars) {
			fmt.Println("Not enough stars to spin.")
		} else {
			fmt.Println("Spin failed:", err)
		}
		return err
	}

	a.currentUser.Balance = result.Balance
	fmt.Printf("You won %d stars! Balance: %d\n", result.Prize, result.Balance)
	return nil
}
