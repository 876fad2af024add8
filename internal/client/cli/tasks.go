package cli

import (
	"context"
	"fmt"
	"os"
)

// Tasks lists the reward tasks with their per-user completion state.
func (a *App) Tasks(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	tasks, err := a.tasks.List(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks available.")
		return nil
	}

	for _, t := range tasks {
		status := " "
		if t.Completed {
			status = "x"
		}
		fmt.Printf("[%s] #%d %s (+%d stars)\n", status, t.ID, t.Title, t.Reward)
		if t.Description != "" {
			fmt.Println("      " + t.Description)
		}
	}
	return nil
}

// VerifyTask submits a task for verification and reports the credited
// reward. The session balance is updated from the server's response.
func (a *App) VerifyTask(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	taskID, err := getInt(a.reader, "Task id", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	result, err := a.tasks.Verify(ctx, a.currentUser.ID, taskID, a.currentUser.TelegramID)
	if err != nil {
		fmt.Println("Verification failed:", err)
		return err
	}

	if !result.Verified {
		fmt.Println("Task not verified yet. Complete it and try again.")
		return nil
	}

	a.currentUser.Balance = result.NewBalance
	fmt.Printf("Verified! +%d stars, balance: %d\n", result.Reward, result.NewBalance)
	return nil
}
