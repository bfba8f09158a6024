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

type TaskHandler struct {
	service  usecase.TaskService
	activity usecase.ActivityService
	log      *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, activity usecase.ActivityService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service:  service,
		activity: activity,
		log:      log,
	}
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateTask(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create task")
		return
	}

	recordActivity(r, h.activity, h.log, "created task "+resp.Name, &resp.ProjectID)
	utils.ResponseCreated(w, "Task created", resp)
}

// List handles GET /api/tasks with an optional projectId filter.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var projectID *uuid.UUID
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid project ID", nil)
			return
		}
		projectID = &id
	}

	resp, err := h.service.ListTasks(r.Context(), projectID)
	if err != nil {
		respondServiceError(w, h.log, err, "list tasks")
		return
	}

	utils.ResponseSuccess(w, "Tasks retrieved", resp)
}

// Get handles GET /api/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid task ID", nil)
		return
	}

	resp, err := h.service.GetTask(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get task")
		return
	}

	utils.ResponseSuccess(w, "Task retrieved", resp)
}

// Update handles PATCH /api/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid task ID", nil)
		return
	}

	var req request.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateTask(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update task")
		return
	}

	recordActivity(r, h.activity, h.log, "updated task "+resp.Name, &resp.ProjectID)
	utils.ResponseSuccess(w, "Task updated", resp)
}
