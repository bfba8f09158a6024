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

type ProjectHandler struct {
	service  usecase.ProjectService
	activity usecase.ActivityService
	log      *zap.Logger
}

func NewProjectHandler(service usecase.ProjectService, activity usecase.ActivityService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		service:  service,
		activity: activity,
		log:      log,
	}
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateProject(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create project")
		return
	}

	recordActivity(r, h.activity, h.log, "created project", &resp.ID)
	utils.ResponseCreated(w, "Project created", resp)
}

// List handles GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListProjects(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list projects")
		return
	}

	utils.ResponseSuccess(w, "Projects retrieved", resp)
}

// Get handles GET /api/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid project ID", nil)
		return
	}

	resp, err := h.service.GetProject(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get project")
		return
	}

	utils.ResponseSuccess(w, "Project retrieved", resp)
}

// Update handles PATCH /api/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid project ID", nil)
		return
	}

	var req request.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateProject(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update project")
		return
	}

	recordActivity(r, h.activity, h.log, "updated project", &resp.ID)
	utils.ResponseSuccess(w, "Project updated", resp)
}

// recordActivity writes an audit trail entry for the session user. Failures
// are logged, never surfaced; the primary operation already succeeded.
func recordActivity(r *http.Request, activity usecase.ActivityService, log *zap.Logger, action string, projectID *string) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return
	}

	_, err := activity.RecordActivity(r.Context(), sess.UserID, &request.CreateActivityRequest{
		ProjectID: projectID,
		Action:    action,
	})
	if err != nil {
		log.Warn("Failed to record activity", zap.Error(err), zap.String("action", action))
	}
}
