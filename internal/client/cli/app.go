package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alii-alqassab/graphql/internal/client/client"
	"github.com/alii-alqassab/graphql/internal/client/config"
	"github.com/alii-alqassab/graphql/internal/client/models"
	"github.com/alii-alqassab/graphql/internal/client/services"
	"github.com/alii-alqassab/graphql/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired services plus the current session and the last
// successfully aggregated view model. The view model is only ever replaced
// whole; a failed refresh leaves the previous one on screen.
type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	repos          *client.Repositories

	token  string
	userID float64
	data   *models.ProfileData

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp opens the local session database, runs migrations, and wires the
// auth and profile services around it.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	lg := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		lg.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(client.Options{
		APIURL:       c.GraphQLURL,
		CookieHeader: c.CookieHeader,
		Store:        services.SessionTokenStore{Repo: repos.Session},
		Timeout:      c.RequestTimeout,
	})

	as := services.NewAuthService(c.AuthURL, c.RequestTimeout, repos.Session, lg)
	ps := services.NewProfileService(apiClient, lg)

	return &App{
		config:         c,
		authService:    as,
		profileService: ps,
		repos:          repos,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		log:            lg,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.DB.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) clearSession() {
	a.token = ""
	a.userID = 0
	a.data = nil
}
