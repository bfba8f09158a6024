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

func wireProject(
	r chi.Router,
	projectHandler *adaptor.ProjectHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/projects", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))

		// Any verified account may read projects.
		r.With(middleware.RequireVerified(log)).Get("/", projectHandler.List)
		r.With(middleware.RequireVerified(log)).Get("/{id}", projectHandler.Get)

		// Only managers may change them.
		r.With(middleware.RequireRoles(log, entity.RoleManager)).Post("/", projectHandler.Create)
		r.With(middleware.RequireRoles(log, entity.RoleManager)).Patch("/{id}", projectHandler.Update)
	})
}
