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

func wireClient(
	r chi.Router,
	clientHandler *adaptor.ClientHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Client records carry contact details, so the whole group is
	// manager-only.
	r.Route("/api/clients", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))
		r.Use(middleware.RequireRoles(log, entity.RoleManager))

		r.Get("/", clientHandler.List)
		r.Get("/client-list", clientHandler.List)
		r.Get("/{id}", clientHandler.Get)
		r.Post("/", clientHandler.Create)
	})
}
