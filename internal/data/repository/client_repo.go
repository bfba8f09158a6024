package repository

import (
	"context"
	"fmt"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]*entity.Client, error)
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

const clientColumns = `id, name, email, phone, address, contact_person, created_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.ContactPerson,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, address, contact_person, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.ContactPerson,
		client.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("email", client.Email),
		)
		return fmt.Errorf("create client %s: %w", client.Email, err)
	}

	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return nil, fmt.Errorf("find client %s: %w", id.String(), err)
	}

	return client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1`

	client, err := scanClient(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find client by email %s: %w", email, err)
	}

	return client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("find all clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			r.log.Error("Failed to scan client row", zap.Error(err))
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients rows: %w", err)
	}

	return clients, nil
}
