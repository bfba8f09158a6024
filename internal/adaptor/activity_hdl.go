package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/activities. The actor is the session user.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.RecordActivity(r.Context(), sess.UserID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "record activity")
		return
	}

	utils.ResponseCreated(w, "Activity recorded", resp)
}

// List handles GET /api/activities with an optional limit parameter.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.service.ListActivities(r.Context(), limit)
	if err != nil {
		respondServiceError(w, h.log, err, "list activities")
		return
	}

	utils.ResponseSuccess(w, "Activities retrieved", resp)
}
