// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/jklassic/logistics/internal/adaptor"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/mailer"
	"github.com/jklassic/logistics/pkg/middleware"
	"github.com/jklassic/logistics/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the Chi router. One routing layer for every role;
// the role middleware decides access, not duplicated route sets.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireParcel(r, handler.Parcel, repo, logger)
	wireAuth(r, handler.Auth, repo, logger)
	wireStaff(r, handler.Staff, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Unmatched routes get the JSON envelope, not a bare 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
