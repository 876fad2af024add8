package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/starmarket/internal/client/api"
	"github.com/dmitrijs2005/starmarket/internal/client/config"
	"github.com/dmitrijs2005/starmarket/internal/client/models"
	"github.com/dmitrijs2005/starmarket/internal/client/services"
	"github.com/dmitrijs2005/starmarket/internal/client/session"
	"github.com/dmitrijs2005/starmarket/internal/logging"
)

// App holds the wired services and the in-memory copy of the session user.
// currentUser mirrors the persisted record; handlers keep the two in step.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *session.SQLiteStore
	auth     services.AuthService
	tasks    services.TaskService
	market   services.MarketService
	exchange services.ExchangeService
	admin    services.AdminService
	roulette services.RouletteService

	currentUser *models.User
	reader      *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		log.Error(ctx, "error initializing session db", "error", err)
		return nil, err
	}

	apiClient := api.New(api.Endpoints{
		Auth:        c.AuthEndpoint,
		Tasks:       c.TasksEndpoint,
		Marketplace: c.MarketplaceEndpoint,
		Exchange:    c.ExchangeEndpoint,
		Admin:       c.AdminEndpoint,
	}, log)

	return &App{
		config:   c,
		log:      log,
		store:    store,
		auth:     services.NewAuthService(apiClient, store),
		tasks:    services.NewTaskService(apiClient, store),
		market:   services.NewMarketService(apiClient),
		exchange: services.NewExchangeService(apiClient),
		admin:    services.NewAdminService(apiClient),
		roulette: services.NewRouletteService(store, c.RouletteSpinDelay),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// setUser updates the in-memory session copy.
func (a *App) setUser(user *models.User) {
	a.currentUser = user
}

// Run restores the previous session, if any, and starts the REPL. It blocks
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if user, err := a.auth.Restore(ctx); err == nil && user != nil {
		a.setUser(user)
		fmt.Printf("Welcome back, %s! Balance: %d stars\n", user.Username, user.Balance)
	} else {
		fmt.Println("Welcome to Star Market CLI (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s %d★)", a.currentUser.Username, a.currentUser.Balance)
}
