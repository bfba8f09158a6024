package wire

import (
	"webuild-dashboard/internal/adaptor"
	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/pkg/middleware"
	"webuild-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTask(
	r chi.Router,
	taskHandler *adaptor.TaskHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))

		r.With(middleware.RequireVerified(log)).Get("/", taskHandler.List)
		r.With(middleware.RequireVerified(log)).Get("/{id}", taskHandler.Get)

		staff := middleware.RequireRoles(log, entity.RoleManager, entity.RoleEmployee)
		r.With(staff).Post("/", taskHandler.Create)
		r.With(staff).Patch("/{id}", taskHandler.Update)
	})
}
