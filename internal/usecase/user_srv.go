package usecase

import (
	"context"
	"fmt"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/dto/response"
	"webuild-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	ListUsers(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error)
	ListTeam(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log,
	}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, perPage, utils.CalculateOffset(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, response.UserToResponse(u))
	}

	return response.NewPaginatedResponse(data, page, perPage, total), nil
}

// ListTeam returns the employee roster for the resources view.
func (s *userService) ListTeam(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.users.FindByRole(ctx, entity.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, response.UserToResponse(u))
	}
	return data, nil
}
