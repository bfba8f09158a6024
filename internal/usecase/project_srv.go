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

type ProjectService interface {
	CreateProject(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error)
	GetProject(ctx context.Context, id uuid.UUID) (*response.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]response.ProjectResponse, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *request.UpdateProjectRequest) (*response.ProjectResponse, error)
}

type projectService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProjectService(repo *repository.Repository, log *zap.Logger) ProjectService {
	return &projectService{
		repo: repo,
		log:  log,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req *request.CreateProjectRequest) (*response.ProjectResponse, error) {
	status := entity.ProjectStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of on track, at risk, delayed, completed", ErrInvalidInput)
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid client id", ErrInvalidInput)
	}

	client, err := s.repo.Client.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}

	now := time.Now()
	project := &entity.Project{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		ClientID:    clientID,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    req.Progress,
		Budget:      req.Budget,
		Spent:       req.Spent,
	}

	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.log.Error("Failed to create project", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("name", project.Name),
	)

	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*response.ProjectResponse, error) {
	project, err := s.repo.Project.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %w", ErrNotFound)
	}

	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]response.ProjectResponse, error) {
	projects, err := s.repo.Project.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return response.ProjectsToResponse(projects), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, req *request.UpdateProjectRequest) (*response.ProjectResponse, error) {
	project, err := s.repo.Project.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %w", ErrNotFound)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		status := entity.ProjectStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid project status", ErrInvalidInput)
		}
		project.Status = status
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Spent != nil {
		project.Spent = *req.Spent
	}
	project.UpdatedAt = time.Now()

	if err := s.repo.Project.Update(ctx, project); err != nil {
		s.log.Error("Failed to update project", zap.Error(err), zap.String("project_id", id.String()))
		return nil, fmt.Errorf("update project: %w", err)
	}

	resp := response.ProjectToResponse(project)
	return &resp, nil
}
