package cli

import (
	"bufio"
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/starmarket/internal/common"
)

// adminPanelPassword gates the admin sub-menu. It is a UI gate only; the
// admin service checks the caller's admin flag on every request.
const adminPanelPassword = "markadmin2025"

// Admin opens the admin panel after checking the cached admin flag and the
// panel password. It runs its own command loop until "back".
func (a *App) Admin(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if !a.currentUser.HasAdminRole() {
		fmt.Println("Access denied.")
		return common.ErrAccessDenied
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(password, []byte(adminPanelPassword)) != 1 {
		fmt.Println("Wrong password.")
		return common.ErrAccessDenied
	}

	fmt.Println("Admin panel. Commands: stats, withdrawals, users, addtask, addbalance, process, back")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("admin> ")
		if !scanner.Scan() {
			return nil
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "":
			continue
		case "stats":
			a.adminStats(ctx)
		case "withdrawals":
			a.adminWithdrawals(ctx)
		case "users":
			a.adminUsers(ctx)
		case "addtask":
			a.adminAddTask(ctx)
		case "addbalance":
			a.adminAddBalance(ctx)
		case "process":
			a.adminProcessWithdrawal(ctx)
		case "back", "exit":
			return nil
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) adminStats(ctx context.Context) {
	stats, err := a.admin.Stats(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Users: %d\n", stats.TotalUsers)
	fmt.Printf("Total balance: %d stars\n", stats.TotalBalance)
	fmt.Printf("Transactions: %d\n", stats.TotalTransactions)
	fmt.Printf("Pending withdrawals: %d\n", stats.PendingWithdrawals)
}

func (a *App) adminWithdrawals(ctx context.Context) {
	withdrawals, err := a.admin.Withdrawals(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(withdrawals) == 0 {
		fmt.Println("No withdrawal requests.")
		return
	}
	for _, w := range withdrawals {
		fmt.Printf("#%d %s: %d stars -> @%s [%s]", w.ID, w.Username, w.Amount, w.TelegramUsername, w.Status)
		if w.AdminComment != "" {
			fmt.Printf(" (%s)", w.AdminComment)
		}
		fmt.Println()
	}
}

func (a *App) adminUsers(ctx context.Context) {
	users, err := a.admin.Users(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, u := range users {
		fmt.Printf("#%d %-16s %d stars", u.ID, u.Username, u.Balance)
		if u.HasAdminRole() {
			fmt.Print(" [admin]")
		}
		fmt.Println()
	}
}

func (a *App) adminAddTask(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	description, err := getMultiline(a.reader, "Task description", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	reward, err := getInt(a.reader, "Reward (stars)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.admin.AddTask(ctx, a.currentUser.ID, title, description, reward); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Task created.")
}

func (a *App) adminAddBalance(ctx context.Context) {
	userID, err := getInt(a.reader, "User id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	amount, err := getInt(a.reader, "Amount (negative to deduct)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	reason, err := getSimpleText(a.reader, "Reason", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.admin.AddBalance(ctx, a.currentUser.ID, userID, amount, reason); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Balance updated.")
}

func (a *App) adminProcessWithdrawal(ctx context.Context) {
	withdrawalID, err := getInt(a.reader, "Withdrawal id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	status, err := getSimpleText(a.reader, "Status (approved/rejected)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	comment, err := getSimpleText(a.reader, "Comment (optional)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if err := a.admin.ProcessWithdrawal(ctx, a.currentUser.ID, withdrawalID, status, comment); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Withdrawal processed.")
}
