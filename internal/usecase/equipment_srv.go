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

type EquipmentService interface {
	CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*response.EquipmentResponse, error)
	ListEquipment(ctx context.Context) ([]response.EquipmentResponse, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error)
}

type equipmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEquipmentService(repo *repository.Repository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		repo: repo,
		log:  log,
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error) {
	status := entity.EquipmentStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown equipment status %q", ErrInvalidInput, req.Status)
	}

	assigned, err := s.resolveProject(ctx, req.AssignedProjectID)
	if err != nil {
		return nil, err
	}

	eq := &entity.Equipment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:              req.Name,
		Type:              req.Type,
		Status:            status,
		AssignedProjectID: assigned,
	}

	if err := s.repo.Equipment.Create(ctx, eq); err != nil {
		s.log.Error("Failed to create equipment", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id uuid.UUID) (*response.EquipmentResponse, error) {
	eq, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	if eq == nil {
		return nil, fmt.Errorf("equipment %w", ErrNotFound)
	}

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]response.EquipmentResponse, error) {
	list, err := s.repo.Equipment.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return response.EquipmentListToResponse(list), nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error) {
	eq, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	if eq == nil {
		return nil, fmt.Errorf("equipment %w", ErrNotFound)
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Type != nil {
		eq.Type = *req.Type
	}
	if req.Status != nil {
		status := entity.EquipmentStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown equipment status %q", ErrInvalidInput, *req.Status)
		}
		eq.Status = status
	}
	if req.AssignedProjectID != nil {
		assigned, err := s.resolveProject(ctx, req.AssignedProjectID)
		if err != nil {
			return nil, err
		}
		eq.AssignedProjectID = assigned
	}

	if err := s.repo.Equipment.Update(ctx, eq); err != nil {
		s.log.Error("Failed to update equipment", zap.Error(err), zap.String("equipment_id", id.String()))
		return nil, fmt.Errorf("update equipment: %w", err)
	}

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

// resolveProject validates an optional project reference. An empty string
// clears the assignment.
func (s *equipmentService) resolveProject(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	projectID, err := uuid.Parse(*raw)
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

	return &projectID, nil
}
