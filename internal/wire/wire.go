package wire

import (
	"net/http"

	"webuild-dashboard/internal/adaptor"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/middleware"
	"webuild-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles services, handlers and routes. rdb may be nil; the rate
// limiter is skipped without it.
func Wiring(repo *repository.Repository, mailer mail.Mailer, rdb *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mailer, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, rdb, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if rdb != nil {
		r.Use(middleware.RateLimit(rdb, config.Redis.PerMinute, logger))
	}

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireProject(r, handler.Project, repo, config, logger)
	wireTask(r, handler.Task, repo, config, logger)
	wireResource(r, handler.Resource, repo, config, logger)
	wireClient(r, handler.Client, repo, config, logger)
	wireActivity(r, handler.Activity, repo, config, logger)
	wireDocument(r, handler.Document, repo, config, logger)
	wireEquipment(r, handler.Equipment, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
