package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/config"
	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/localdb"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/assetkeeper/internal/client/services"
	"github.com/dmitrijs2005/assetkeeper/internal/client/session"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	guard       *guard.Guard
	account     services.AccountService
	assets      services.AssetService
	assetTypes  services.AssetTypeService
	users       services.UserService
	maintenance services.MaintenanceService
	transfers   services.TransferService
	trash       services.TrashService
	dashboard   services.DashboardService

	reader *bufio.Reader
	out    io.Writer

	path   string
	view   guard.Decision
	params models.ListParams
}

// NewApp opens the local database, rehydrates the session from it and
// builds the API client and services on top.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.InitDatabase(ctx, c.StorageDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.StorageDSN, "error", err)
		return nil, err
	}

	slot := session.NewSlot(metadata.NewSQLiteRepository(db), session.DefaultSlot)
	store := session.Open(ctx, slot, logger.With("component", "session"))

	client := api.New(c.BaseURL, c.APIVersion, store,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger.With("component", "api")),
	)

	a := newApp(c, logger, store, client)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, store *session.Store, client *api.Client) *App {
	assets := services.NewAssetService(client)
	users := services.NewUserService(client)
	maintenance := services.NewMaintenanceService(client)
	transfers := services.NewTransferService(client)

	return &App{
		config:      c,
		logger:      logger,
		guard:       guard.New(),
		account:     services.NewAccountService(services.NewAuthService(client), store, logger),
		assets:      assets,
		assetTypes:  services.NewAssetTypeService(client),
		users:       users,
		maintenance: maintenance,
		transfers:   transfers,
		trash:       services.NewTrashService(client),
		dashboard:   services.NewDashboardService(assets, users, maintenance, transfers, logger),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		path:        "/",
	}
}

// Run starts the REPL and closes the local database when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.account.Current().Authenticated()
}
