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

func wireEquipment(
	r chi.Router,
	equipmentHandler *adaptor.EquipmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/equipment", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, config.Auth.CookieName, log))

		r.With(middleware.RequireVerified(log)).Get("/", equipmentHandler.List)
		r.With(middleware.RequireVerified(log)).Get("/{id}", equipmentHandler.Get)

		staff := middleware.RequireRoles(log, entity.RoleManager, entity.RoleEmployee)
		r.With(staff).Post("/", equipmentHandler.Create)
		r.With(staff).Patch("/{id}", equipmentHandler.Update)
	})
}
