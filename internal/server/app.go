// Package server initializes and runs the application: it connects the
// document store, wires repositories and services together, and serves the
// HTTP API until shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lunchboxd/lunchboxd-server/internal/logging"
	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/httpapi"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/favorites"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/restaurants"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/users"
	"github.com/lunchboxd/lunchboxd-server/internal/server/services"
	"github.com/lunchboxd/lunchboxd-server/internal/server/storage"
)

// App is the composition root. All dependencies are constructed here and
// injected; no package holds ambient global state.
type App struct {
	config     *config.Config
	logger     logging.Logger
	store      *storage.Store
	httpServer *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	store, err := storage.NewStore(ctx, c.MongoURI, c.DatabaseName, c.StoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	userRepo := users.NewMongoRepository(store)
	restoRepo := restaurants.NewMongoRepository(store)
	favRepo := favorites.NewMongoRepository(store)

	authService := services.NewAuthService(userRepo, c)
	restaurantService := services.NewRestaurantService(restoRepo, c)
	favoriteService := services.NewFavoriteService(favRepo, restoRepo, c)
	mediaService := services.NewMediaService(c)

	httpServer := httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger,
		authService, restaurantService, favoriteService, mediaService)

	return &App{config: c, logger: logger, store: store, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err.Error())
	}
}
