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

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateClient(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create client")
		return
	}

	utils.ResponseCreated(w, "Client created", resp)
}

// List handles GET /api/clients and GET /api/clients/client-list
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListClients(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "Clients retrieved", resp)
}

// Get handles GET /api/clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid client ID", nil)
		return
	}

	resp, err := h.service.GetClient(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get client")
		return
	}

	utils.ResponseSuccess(w, "Client retrieved", resp)
}
