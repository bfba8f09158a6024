package usecase

import (
	"context"
	"fmt"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentService interface {
	// UploadDocument registers a document against a project. The uploader
	// id comes from the session.
	UploadDocument(ctx context.Context, uploadedBy uuid.UUID, req *request.CreateDocumentRequest) (*response.DocumentResponse, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]response.DocumentResponse, error)
}

type documentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDocumentService(repo *repository.Repository, log *zap.Logger) DocumentService {
	return &documentService{
		repo: repo,
		log:  log,
	}
}

func (s *documentService) UploadDocument(ctx context.Context, uploadedBy uuid.UUID, req *request.CreateDocumentRequest) (*response.DocumentResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid project id", ErrInvalidInput)
	}

	project, err := s.repo.Project.FindByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %w", ErrNotFound)
	}

	doc := &entity.Document{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ProjectID:  projectID,
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		UploadedBy: uploadedBy,
	}

	if err := s.repo.Document.Create(ctx, doc); err != nil {
		s.log.Error("Failed to create document", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create document: %w", err)
	}

	resp := response.DocumentToResponse(doc)
	return &resp, nil
}

func (s *documentService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]response.DocumentResponse, error) {
	docs, err := s.repo.Document.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return response.DocumentsToResponse(docs), nil
}
