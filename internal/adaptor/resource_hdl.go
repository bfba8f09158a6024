package adaptor

import (
	"encoding/json"
	"net/http"

	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	service usecase.ResourceService
	users   usecase.UserService
	log     *zap.Logger
}

func NewResourceHandler(service usecase.ResourceService, users usecase.UserService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		users:   users,
		log:     log,
	}
}

// Create handles POST /api/resources
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateResource(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create resource")
		return
	}

	utils.ResponseCreated(w, "Resource allocation created", resp)
}

// List handles GET /api/resources
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListResources(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list resources")
		return
	}

	utils.ResponseSuccess(w, "Resource allocations retrieved", resp)
}

// GetByProject handles GET /api/resources/project/{projectId}
func (h *ResourceHandler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid project ID", nil)
		return
	}

	resp, err := h.service.GetResourceByProject(r.Context(), projectID)
	if err != nil {
		respondServiceError(w, h.log, err, "get resource allocation")
		return
	}

	utils.ResponseSuccess(w, "Resource allocation retrieved", resp)
}

// Update handles PATCH /api/resources/{id}
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid resource ID", nil)
		return
	}

	var req request.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateResource(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update resource allocation")
		return
	}

	utils.ResponseSuccess(w, "Resource allocation updated", resp)
}

// Team handles GET /api/resources/team, the roster of employee accounts
// available for assignment.
func (h *ResourceHandler) Team(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.ListTeam(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list team")
		return
	}

	utils.ResponseSuccess(w, "Team members retrieved", resp)
}
