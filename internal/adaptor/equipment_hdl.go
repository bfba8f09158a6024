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

type EquipmentHandler struct {
	service usecase.EquipmentService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/equipment
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEquipmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, "Equipment created", resp)
}

// List handles GET /api/equipment
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListEquipment(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list equipment")
		return
	}

	utils.ResponseSuccess(w, "Equipment retrieved", resp)
}

// Get handles GET /api/equipment/{id}
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid equipment ID", nil)
		return
	}

	resp, err := h.service.GetEquipment(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get equipment")
		return
	}

	utils.ResponseSuccess(w, "Equipment retrieved", resp)
}

// Update handles PATCH /api/equipment/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid equipment ID", nil)
		return
	}

	var req request.UpdateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateEquipment(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update equipment")
		return
	}

	utils.ResponseSuccess(w, "Equipment updated", resp)
}
