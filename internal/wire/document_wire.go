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

func wireDocument(
	r chi.Router,
	documentHandler *adaptor.DocumentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))

		r.With(middleware.RequireVerified(log)).Get("/", documentHandler.ListByProject)
		r.With(middleware.RequireVerified(log)).Get("/project/{projectId}", documentHandler.ListByProject)

		staff := middleware.RequireRoles(log, entity.RoleManager, entity.RoleEmployee)
		r.With(staff).Post("/", documentHandler.Create)
	})
}
