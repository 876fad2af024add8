package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

type fakeAdminAPI struct {
	addBalanceCalls int
	addTaskCalls    int
}

func (f *fakeAdminAPI) AdminStats(ctx context.Context, adminID int64) (*models.Stats, error) {
	return &models.Stats{}, nil
}

func (f *fakeAdminAPI) AdminWithdrawals(ctx context.Context, adminID int64) ([]models.Withdrawal, error) {
	return nil, nil
}

func (f *fakeAdminAPI) AdminUsers(ctx context.Context, adminID int64) ([]models.User, error) {
	return nil, nil
}

func (f *fakeAdminAPI) AdminAddBalance(ctx context.Context, adminID, userID, amount int64, reason string) error {
	f.addBalanceCalls++
	return nil
}

func (f *fakeAdminAPI) AdminAddTask(ctx context.Context, adminID int64, title, description string, reward int64) error {
	f.addTaskCalls++
	return nil
}

func (f *fakeAdminAPI) AdminProcessWithdrawal(ctx context.Context, adminID, withdrawalID int64, status, comment string) error {
	return nil
}

func TestAdminService_AddBalanceZeroRejected(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	err := svc.AddBalance(context.Background(), 1, 2, 0, "bonus")
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
	assert.Equal(t, 0, api.addBalanceCalls)
}

func TestAdminService_AddBalanceNegativeAllowed(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	require.NoError(t, svc.AddBalance(context.Background(), 1, 2, -500, "penalty"))
	assert.Equal(t, 1, api.addBalanceCalls)
}

func TestAdminService_AddTaskValidation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		reward  int64
		wantErr error
	}{
		{"empty title", "  ", 100, common.ErrEmptyTitle},
		{"zero reward", "Subscribe", 0, common.ErrInvalidReward},
		{"negative reward", "Subscribe", -10, common.ErrInvalidReward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAdminAPI{}
			svc := NewAdminService(api)

			err := svc.AddTask(context.Background(), 1, tt.title, "desc", tt.reward)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, api.addTaskCalls, "no request should be sent")
		})
	}
}

func TestAdminService_AddTaskValid(t *testing.T) {
	api := &fakeAdminAPI{}
	svc := NewAdminService(api)

	require.NoError(t, svc.AddTask(context.Background(), 1, "Subscribe to channel", "join and stay", 500))
	assert.Equal(t, 1, api.addTaskCalls)
}
