// Package httpapi exposes the core services over HTTP. It owns route
// wiring, bearer-token extraction, and the mapping from the shared error
// taxonomy to status codes; all business decisions stay in the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lunchboxd/lunchboxd-server/internal/logging"
	"github.com/lunchboxd/lunchboxd-server/internal/server/services"
)

type HTTPServer struct {
	address     string
	logger      logging.Logger
	auth        *services.AuthService
	restaurants *services.RestaurantService
	favorites   *services.FavoriteService
	media       *services.MediaService
}

func NewHTTPServer(address string, l logging.Logger, as *services.AuthService,
	rs *services.RestaurantService, fs *services.FavoriteService, ms *services.MediaService) *HTTPServer {
	return &HTTPServer{
		address:     address,
		logger:      l.With("module", "http_server"),
		auth:        as,
		restaurants: rs,
		favorites:   fs,
		media:       ms,
	}
}

// Router builds the gin engine with all routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// the frontend is served from a different origin
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)
		api.GET("/restaurants", s.listRestaurants)
		api.POST("/restaurants", s.createRestaurant)
		api.GET("/filters", s.filterOptions)

		protected := api.Group("")
		protected.Use(s.requireAuth())
		{
			protected.POST("/favorites", s.addFavorite)
			protected.GET("/favorites/:userId", s.listFavorites)
			protected.POST("/uploads", s.createUpload)
			protected.GET("/uploads", s.getUpload)
		}
	}

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
