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

type ClientService interface {
	CreateClient(ctx context.Context, req *request.CreateClientRequest) (*response.ClientResponse, error)
	GetClient(ctx context.Context, id uuid.UUID) (*response.ClientResponse, error)
	ListClients(ctx context.Context) ([]response.ClientResponse, error)
}

type clientService struct {
	clients repository.ClientRepository
	log     *zap.Logger
}

func NewClientService(clients repository.ClientRepository, log *zap.Logger) ClientService {
	return &clientService{
		clients: clients,
		log:     log,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req *request.CreateClientRequest) (*response.ClientResponse, error) {
	existing, err := s.clients.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check client email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("client email %w", ErrConflict)
	}

	client := &entity.Client{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		s.log.Error("Failed to create client", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create client: %w", err)
	}

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) GetClient(ctx context.Context, id uuid.UUID) (*response.ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrNotFound)
	}

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]response.ClientResponse, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return response.ClientsToResponse(clients), nil
}
