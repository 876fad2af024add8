package services

import (
	"context"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/client/session"
)

type tasksAPI interface {
	Tasks(ctx context.Context, userID int64) ([]models.Task, error)
	VerifyTask(ctx context.Context, userID, taskID, telegramUserID int64) (*models.VerifyResult, error)
}

// TaskService lists reward tasks and submits them for verification.
type TaskService interface {
	List(ctx context.Context, userID int64) ([]models.Task, error)
	Verify(ctx context.Context, userID, taskID, telegramUserID int64) (*models.VerifyResult, error)
}

type taskService struct {
	api   tasksAPI
	store session.Store
}

func NewTaskService(api tasksAPI, store session.Store) TaskService {
	return &taskService{api: api, store: store}
}

func (t *taskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return t.api.Tasks(ctx, userID)
}

// Verify submits the task and, on a verified result, overwrites the cached
// balance with the server-confirmed new_balance.
func (t *taskService) Verify(ctx context.Context, userID, taskID, telegramUserID int64) (*models.VerifyResult, error) {
	result, err := t.api.VerifyTask(ctx, userID, taskID, telegramUserID)
	if err != nil {
		return nil, err
	}

	if result.Verified {
		if user, err := t.store.Load(ctx); err == nil && user != nil {
			user.Balance = result.NewBalance
			_ = t.store.Save(ctx, user)
		}
	}
	return result, nil
}
