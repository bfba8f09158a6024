package adaptor

import (
	"errors"
	"net/http"

	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Project   *ProjectHandler
	Task      *TaskHandler
	Resource  *ResourceHandler
	Client    *ClientHandler
	Activity  *ActivityHandler
	Document  *DocumentHandler
	Equipment *EquipmentHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config, log),
		User:      NewUserHandler(service.User, log),
		Project:   NewProjectHandler(service.Project, service.Activity, log),
		Task:      NewTaskHandler(service.Task, service.Activity, log),
		Resource:  NewResourceHandler(service.Resource, service.User, log),
		Client:    NewClientHandler(service.Client, log),
		Activity:  NewActivityHandler(service.Activity, log),
		Document:  NewDocumentHandler(service.Document, log),
		Equipment: NewEquipmentHandler(service.Equipment, log),
	}
}

// respondServiceError maps service sentinels onto HTTP responses. Handlers
// never inspect error strings.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid username or password")

	case errors.Is(err, usecase.ErrEmailNotVerified):
		log.Warn(operation+" blocked, email unverified", zap.Error(err))
		utils.ResponseForbidden(w, "Please verify your email before logging in")

	case errors.Is(err, usecase.ErrExpired):
		log.Warn(operation+" expired", zap.Error(err))
		utils.ResponseBadRequest(w, "Verification token has expired", nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
