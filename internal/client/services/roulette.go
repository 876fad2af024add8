package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/starmarket/internal/client/session"
	"github.com/dmitrijs2005/starmarket/internal/common"
)

// RouletteStake is the fixed cost of one spin, in stars.
const RouletteStake = 100

// roulettePrizes is the fixed prize list; one entry is chosen uniformly
// at random per spin.
var roulettePrizes = []int64{50, 100, 200, 500, 1000}

// SpinResult is the outcome of one roulette spin. Balance is the cached
// balance after the stake was deducted and the prize credited.
type SpinResult struct {
	Stake   int64
	Prize   int64
	Balance int64
}

// RouletteService is the fixed-delay simulated roulette wheel.
//
// The outcome is computed and applied entirely client-side: the stake and
// prize mutate only the cached session record and are never persisted to
// any remote service. This mirrors the platform's observed behavior and is
// deliberately kept as a separate, unpersisted simulation.
type RouletteService interface {
	Spin(ctx context.Context) (*SpinResult, error)
}

type rouletteService struct {
	store session.Store
	delay time.Duration

	// pick selects a prize index; swapped in tests.
	pick func(n int) int
}

func NewRouletteService(store session.Store, delay time.Duration) RouletteService {
	return &rouletteService{store: store, delay: delay, pick: rand.IntN}
}

// Spin deducts the stake from the cached balance, waits out the spin delay
// (honoring ctx cancellation), then credits a random prize. A cached
// balance below the stake rejects the spin locally.
func (r *rouletteService) Spin(ctx context.Context) (*SpinResult, error) {
	user, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrNotLoggedIn
	}
	if user.Balance < RouletteStake {
		return nil, common.ErrInsufficientStars
	}

	user.Balance -= RouletteStake
	if err := r.store.Save(ctx, user); err != nil {
		return nil, err
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	prize := roulettePrizes[r.pick(len(roulettePrizes))]
	user.Balance += prize
	if err := r.store.Save(ctx, user); err != nil {
		return nil, err
	}

	return &SpinResult{Stake: RouletteStake, Prize: prize, Balance: user.Balance}, nil
}
