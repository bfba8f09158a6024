package wire

import (
	"webuild-dashboard/internal/adaptor"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/pkg/middleware"
	"webuild-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActivity(
	r chi.Router,
	activityHandler *adaptor.ActivityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/activities", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))
		r.Use(middleware.RequireVerified(log))

		r.Get("/", activityHandler.List)
		r.Post("/", activityHandler.Create)
	})
}
