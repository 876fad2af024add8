package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

type adminAPI interface {
	AdminStats(ctx context.Context, adminID int64) (*models.Stats, error)
	AdminWithdrawals(ctx context.Context, adminID int64) ([]models.Withdrawal, error)
	AdminUsers(ctx context.Context, adminID int64) ([]models.User, error)
	AdminAddBalance(ctx context.Context, adminID, userID, amount int64, reason string) error
	AdminAddTask(ctx context.Context, adminID int64, title, description string, reward int64) error
	AdminProcessWithdrawal(ctx context.Context, adminID, withdrawalID int64, status, comment string) error
}

// AdminService wraps the privileged admin API. The adminID accompanies
// every call; authorization is enforced by the admin service itself.
type AdminService interface {
	Stats(ctx context.Context, adminID int64) (*models.Stats, error)
	Withdrawals(ctx context.Context, adminID int64) ([]models.Withdrawal, error)
	Users(ctx context.Context, adminID int64) ([]models.User, error)
	AddBalance(ctx context.Context, adminID, userID, amount int64, reason string) error
	AddTask(ctx context.Context, adminID int64, title, description string, reward int64) error
	ProcessWithdrawal(ctx context.Context, adminID, withdrawalID int64, status, comment string) error
}

type adminService struct {
	api adminAPI
}

func NewAdminService(api adminAPI) AdminService {
	return &adminService{api: api}
}

func (s *adminService) Stats(ctx context.Context, adminID int64) (*models.Stats, error) {
	return s.api.AdminStats(ctx, adminID)
}

func (s *adminService) Withdrawals(ctx context.Context, adminID int64) ([]models.Withdrawal, error) {
	return s.api.AdminWithdrawals(ctx, adminID)
}

func (s *adminService) Users(ctx context.Context, adminID int64) ([]models.User, error) {
	return s.api.AdminUsers(ctx, adminID)
}

// AddBalance applies a manual adjustment. A zero amount is rejected
// locally (negative amounts are deliberate deductions and pass through).
func (s *adminService) AddBalance(ctx context.Context, adminID, userID, amount int64, reason string) error {
	if amount == 0 {
		return common.ErrInvalidAmount
	}
	return s.api.AdminAddBalance(ctx, adminID, userID, amount, reason)
}

// AddTask creates a manual task. Title and a positive reward are required.
func (s *adminService) AddTask(ctx context.Context, adminID int64, title, description string, reward int64) error {
	if strings.TrimSpace(title) == "" {
		return common.ErrEmptyTitle
	}
	if reward <= 0 {
		return common.ErrInvalidReward
	}
	return s.api.AdminAddTask(ctx, adminID, title, description, reward)
}

func (s *adminService) ProcessWithdrawal(ctx context.Context, adminID, withdrawalID int64, status, comment string) error {
	return s.api.AdminProcessWithdrawal(ctx, adminID, withdrawalID, status, comment)
}
