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

func wireResource(
	r chi.Router,
	resourceHandler *adaptor.ResourceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/resources", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))

		staff := middleware.RequireRoles(log, entity.RoleManager, entity.RoleEmployee)
		r.With(staff).Get("/", resourceHandler.List)
		r.With(staff).Get("/team", resourceHandler.Team)
		r.With(staff).Get("/project/{projectId}", resourceHandler.GetByProject)

		manager := middleware.RequireRoles(log, entity.RoleManager)
		r.With(manager).Post("/", resourceHandler.Create)
		r.With(manager).Patch("/{id}", resourceHandler.Update)
	})
}
