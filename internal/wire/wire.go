package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// guards are the middleware stacks shared by the route files. staff is any
// signed-in user; desk is admin or front desk.
type guards struct {
	staff    chi.Middlewares
	desk     chi.Middlewares
	admin    chi.Middlewares
	deskRole func(http.Handler) http.Handler
}

func newGuards(repo *repository.Repository, log *zap.Logger) guards {
	auth := middleware.AuthSession(repo.Session, repo.User, log)
	deskRole := middleware.RequireRole(log, entity.RoleAdmin, entity.RoleFrontDesk)
	return guards{
		staff:    chi.Middlewares{auth},
		desk:     chi.Middlewares{auth, deskRole},
		admin:    chi.Middlewares{auth, middleware.RequireRole(log, entity.RoleAdmin)},
		deskRole: deskRole,
	}
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, tx repository.Transactor, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tx, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, repo, logger),
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	g := newGuards(repo, logger)

	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireInventory(r, handler.Inventory, g)
	wireRoom(r, handler.Room, handler.Inventory, g)
	wireRate(r, handler.Rate, g)
	wireBooking(r, handler.Booking, handler.Payment, g)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
