package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Tasks(ctx context.Context) error
	VerifyTask(ctx context.Context) error
	Store(ctx context.Context) error
	BuyStore(ctx context.Context) error
	Market(ctx context.Context) error
	BuyMarket(ctx context.Context) error
	History(ctx context.Context) error
	Gifts(ctx context.Context) error
	SellGift(ctx context.Context) error
	Exchange(ctx context.Context) error
	BuyShares(ctx context.Context) error
	SellShares(ctx context.Context) error
	Chart(ctx context.Context) error
	Profile(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Refresh(ctx context.Context) error
	Roulette(ctx context.Context) error
	Top(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Star Market CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tasks, verify, store, buystore, market, buymarket, history, gifts, sellgift, exchange, buy, sell, chart, profile, withdraw, roulette, top, refresh, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "tasks":
			_ = a.Tasks(ctx)

		case "verify":
			_ = a.VerifyTask(ctx)

		case "store":
			_ = a.Store(ctx)

		case "buystore":
			_ = a.BuyStore(ctx)

		case "market":
			_ = a.Market(ctx)

		case "buymarket":
			_ = a.BuyMarket(ctx)

		case "history":
			_ = a.History(ctx)

		case "gifts":
			_ = a.Gifts(ctx)

		case "sellgift":
			_ = a.SellGift(ctx)

		case "exchange":
			_ = a.Exchange(ctx)

		case "buy":
			_ = a.BuyShares(ctx)

		case "sell":
			_ = a.SellShares(ctx)

		case "chart":
			_ = a.Chart(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "roulette":
			_ = a.Roulette(ctx)

		case "top":
			_ = a.Top(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
