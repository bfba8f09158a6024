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

type DocumentHandler struct {
	service usecase.DocumentService
	log     *zap.Logger
}

func NewDocumentHandler(service usecase.DocumentService, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/documents. The uploader is the session user.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UploadDocument(r.Context(), sess.UserID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "upload document")
		return
	}

	utils.ResponseCreated(w, "Document uploaded", resp)
}

// ListByProject handles GET /api/documents?projectId= and the path form
// GET /api/documents/project/{projectId}.
func (h *DocumentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "projectId")
	if raw == "" {
		raw = r.URL.Query().Get("projectId")
	}

	projectID, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid project ID", nil)
		return
	}

	resp, err := h.service.ListByProject(r.Context(), projectID)
	if err != nil {
		respondServiceError(w, h.log, err, "list documents")
		return
	}

	utils.ResponseSuccess(w, "Documents retrieved", resp)
}
