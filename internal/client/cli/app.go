// Package cli implements the interactive terminal client: a REPL over the
// application services, with the session restored from local storage before
// any command runs.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/config"
	"github.com/littlerefugees/refugio-cli/internal/client/credstore"
	"github.com/littlerefugees/refugio-cli/internal/client/nav"
	"github.com/littlerefugees/refugio-cli/internal/client/services"
	"github.com/littlerefugees/refugio-cli/internal/client/session"
	"github.com/littlerefugees/refugio-cli/internal/client/ui"
	"github.com/littlerefugees/refugio-cli/internal/logging"
)

// App wires the client together and carries the state shared by the REPL
// commands.
type App struct {
	config   *config.Config
	store    *credstore.SQLiteStore
	session  *session.Manager
	router   *nav.Router
	notifier *ui.Notifier

	auth          *services.AuthService
	animals       *services.AnimalService
	adoptions     *services.AdoptionService
	users         *services.UserService
	shelters      *services.ShelterService
	adminAnimals  *services.AdminAnimalService
	adminRequests *services.AdminAdoptionService

	reader *bufio.Reader
}

// NewApp builds the full object graph. The session is restored from the
// credentials database here, before the router or any command can observe
// it, so a deep link into an admin screen sees a logged-in user on a fresh
// start.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := credstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	sess := session.New(store)
	if err := sess.Restore(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	notifier := ui.NewNotifier(os.Stderr)

	router := nav.NewRouter()
	router.Protect("/admin", nav.AdminOnly(sess))

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}

	httpClient := &http.Client{
		Transport: &api.AuthTransport{Tokens: store, Limiter: limiter},
		Timeout:   cfg.RequestTimeout,
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.New(cfg.ServerURL, store,
		api.WithHTTPClient(httpClient),
		api.WithLogger(log),
		api.WithExpiredHandler(api.NewExpiredInterceptor(sess, notifier, router)),
	)

	return &App{
		config:   cfg,
		store:    store,
		session:  sess,
		router:   router,
		notifier: notifier,

		auth:          services.NewAuthService(apiClient),
		animals:       services.NewAnimalService(apiClient),
		adoptions:     services.NewAdoptionService(apiClient),
		users:         services.NewUserService(apiClient),
		shelters:      services.NewShelterService(apiClient, sess),
		adminAnimals:  services.NewAdminAnimalService(apiClient),
		adminRequests: services.NewAdminAdoptionService(apiClient),

		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run drives the REPL until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

func (a *App) isAdmin() bool {
	return a.session.CurrentUser().IsAdmin()
}

// status is the prompt suffix: the logged-in user's email plus an admin
// marker.
func (a *App) status() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if u.IsAdmin() {
		s += " admin"
	}
	return "(" + s + ")"
}

// enterAdmin routes to an administrative path, telling the user when the
// guard bounces them back to the root.
func (a *App) enterAdmin(path string) bool {
	if !a.router.Navigate(path) {
		printlnFn("Access restricted to shelter administrators.")
		return false
	}
	return true
}
