package cli

import (
	"context"
	"fmt"
)

// standing is one leaderboard row.
type standing struct {
	Name  string
	Stars int64
}

// demoStandings is the fixed leaderboard shown in the client. There is no
// leaderboard endpoint; the list is demo content.
var demoStandings = []standing{
	{"CryptoKing", 125_400},
	{"StarHunter", 98_750},
	{"GiftMaster", 87_300},
	{"LuckyOne", 76_150},
	{"TradeGuru", 64_800},
}

// Top prints the leaderboard, with the current user appended for context.
func (a *App) Top(ctx context.Context) error {
	for i, s := range demoStandings {
		fmt.Printf("%2d. %-12s %d stars\n", i+1, s.Name, s.Stars)
	}
	if a.currentUser != nil {
		fmt.Printf("  . %-12s %d stars (you)\n", a.currentUser.Username, a.currentUser.Balance)
	}
	return nil
}
