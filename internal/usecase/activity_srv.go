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

type ActivityService interface {
	// RecordActivity logs an action performed by the authenticated user.
	// The actor id comes from the session, never from the request body.
	RecordActivity(ctx context.Context, userID uuid.UUID, req *request.CreateActivityRequest) (*response.ActivityResponse, error)
	ListActivities(ctx context.Context, limit int) ([]response.ActivityResponse, error)
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log,
	}
}

func (s *activityService) RecordActivity(ctx context.Context, userID uuid.UUID, req *request.CreateActivityRequest) (*response.ActivityResponse, error) {
	var projectID *uuid.UUID
	if req.ProjectID != nil {
		id, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid project id", ErrInvalidInput)
		}
		project, err := s.repo.Project.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check project: %w", err)
		}
		if project == nil {
			return nil, fmt.Errorf("project %w", ErrNotFound)
		}
		projectID = &id
	}

	activity := &entity.Activity{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		ProjectID: projectID,
		Action:    req.Action,
		Details:   req.Details,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Error("Failed to record activity", zap.Error(err), zap.String("action", req.Action))
		return nil, fmt.Errorf("record activity: %w", err)
	}

	resp := response.ActivityToResponse(activity)
	return &resp, nil
}

func (s *activityService) ListActivities(ctx context.Context, limit int) ([]response.ActivityResponse, error) {
	var (
		activities []*entity.Activity
		err        error
	)

	if limit > 0 {
		activities, err = s.repo.Activity.FindRecent(ctx, limit)
	} else {
		activities, err = s.repo.Activity.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return response.ActivitiesToResponse(activities), nil
}
