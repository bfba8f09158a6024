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

type ResourceService interface {
	CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error)
	GetResourceByProject(ctx context.Context, projectID uuid.UUID) (*response.ResourceResponse, error)
	ListResources(ctx context.Context) ([]response.ResourceResponse, error)
	UpdateResource(ctx context.Context, id uuid.UUID, req *request.UpdateResourceRequest) (*response.ResourceResponse, error)
}

type resourceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewResourceService(repo *repository.Repository, log *zap.Logger) ResourceService {
	return &resourceService{
		repo: repo,
		log:  log,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error) {
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

	// One allocation per project.
	existing, err := s.repo.Resource.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("check resource: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("resource for project %w", ErrConflict)
	}

	members, err := parseMemberIDs(req.TeamMembers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resource := &entity.Resource{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProjectID:            projectID,
		TeamMemberCount:      req.TeamMemberCount,
		EquipmentUtilization: req.EquipmentUtilization,
		TeamMembers:          members,
	}

	if err := s.repo.Resource.Create(ctx, resource); err != nil {
		s.log.Error("Failed to create resource",
			zap.Error(err),
			zap.String("project_id", projectID.String()),
		)
		return nil, fmt.Errorf("create resource: %w", err)
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) GetResourceByProject(ctx context.Context, projectID uuid.UUID) (*response.ResourceResponse, error) {
	resource, err := s.repo.Resource.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	if resource == nil {
		return nil, fmt.Errorf("resource %w", ErrNotFound)
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) ListResources(ctx context.Context) ([]response.ResourceResponse, error) {
	resources, err := s.repo.Resource.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return response.ResourcesToResponse(resources), nil
}

func (s *resourceService) UpdateResource(ctx context.Context, id uuid.UUID, req *request.UpdateResourceRequest) (*response.ResourceResponse, error) {
	resource, err := s.repo.Resource.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	if resource == nil {
		return nil, fmt.Errorf("resource %w", ErrNotFound)
	}

	if req.TeamMemberCount != nil {
		resource.TeamMemberCount = *req.TeamMemberCount
	}
	if req.EquipmentUtilization != nil {
		resource.EquipmentUtilization = *req.EquipmentUtilization
	}
	if req.TeamMembers != nil {
		members, err := parseMemberIDs(req.TeamMembers)
		if err != nil {
			return nil, err
		}
		resource.TeamMembers = members
	}
	resource.UpdatedAt = time.Now()

	if err := s.repo.Resource.Update(ctx, resource); err != nil {
		s.log.Error("Failed to update resource", zap.Error(err), zap.String("resource_id", id.String()))
		return nil, fmt.Errorf("update resource: %w", err)
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func parseMemberIDs(raw []string) ([]uuid.UUID, error) {
	members := make([]uuid.UUID, 0, len(raw))
	for _, m := range raw {
		id, err := uuid.Parse(m)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid team member id %s", ErrInvalidInput, m)
		}
		members = append(members, id)
	}
	return members, nil
}
