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

type TaskService interface {
	CreateTask(ctx context.Context, req *request.CreateTaskRequest) (*response.TaskResponse, error)
	GetTask(ctx context.Context, id uuid.UUID) (*response.TaskResponse, error)
	ListTasks(ctx context.Context, projectID *uuid.UUID) ([]response.TaskResponse, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *request.UpdateTaskRequest) (*response.TaskResponse, error)
}

type taskService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTaskService(repo *repository.Repository, log *zap.Logger) TaskService {
	return &taskService{
		repo: repo,
		log:  log,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *request.CreateTaskRequest) (*response.TaskResponse, error) {
	status := entity.TaskStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid task status", ErrInvalidInput)
	}
	priority := entity.TaskPriority(req.Priority)
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: invalid task priority", ErrInvalidInput)
	}

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

	var assigneeID *uuid.UUID
	if req.AssigneeID != nil {
		id, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid assignee id", ErrInvalidInput)
		}
		assignee, err := s.repo.User.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check assignee: %w", err)
		}
		if assignee == nil {
			return nil, fmt.Errorf("assignee %w", ErrNotFound)
		}
		assigneeID = &id
	}

	now := time.Now()
	task := &entity.Task{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		AssigneeID:  assigneeID,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.log.Error("Failed to create task", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create task: %w", err)
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*response.TaskResponse, error) {
	task, err := s.repo.Task.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}

func (s *taskService) ListTasks(ctx context.Context, projectID *uuid.UUID) ([]response.TaskResponse, error) {
	var (
		tasks []*entity.Task
		err   error
	)

	if projectID != nil {
		tasks, err = s.repo.Task.FindByProject(ctx, *projectID)
	} else {
		tasks, err = s.repo.Task.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return response.TasksToResponse(tasks), nil
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, req *request.UpdateTaskRequest) (*response.TaskResponse, error) {
	task, err := s.repo.Task.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid assignee id", ErrInvalidInput)
		}
		assignee, err := s.repo.User.FindByID(ctx, assigneeID)
		if err != nil {
			return nil, fmt.Errorf("check assignee: %w", err)
		}
		if assignee == nil {
			return nil, fmt.Errorf("assignee %w", ErrNotFound)
		}
		task.AssigneeID = &assigneeID
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid task status", ErrInvalidInput)
		}
		task.Status = status
	}
	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: invalid task priority", ErrInvalidInput)
		}
		task.Priority = priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.log.Error("Failed to update task", zap.Error(err), zap.String("task_id", id.String()))
		return nil, fmt.Errorf("update task: %w", err)
	}

	resp := response.TaskToResponse(task)
	return &resp, nil
}
