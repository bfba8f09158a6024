package repository

import (
	"context"
	"fmt"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VerificationRepository interface {
	// Create stores a fresh verification token, superseding any outstanding
	// tokens for the same user.
	Create(ctx context.Context, v *entity.EmailVerification) error
	// Consume atomically deletes the token matching the given hash and
	// returns it. A token can be consumed exactly once; a second call with
	// the same hash returns nil. Expiry is NOT checked here - the caller
	// inspects ExpiresAt on the returned record.
	Consume(ctx context.Context, tokenHash string) (*entity.EmailVerification, error)
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
	CleanExpired(ctx context.Context) error
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Create(ctx context.Context, v *entity.EmailVerification) error {
	// Supersede any previous token first so a user has at most one
	// outstanding verification token.
	if err := r.DeleteForUser(ctx, v.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO email_verifications (id, user_id, email, token_hash,
		                                 expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		v.ID,
		v.UserID,
		v.Email,
		v.TokenHash,
		v.ExpiresAt,
		v.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create email verification",
			zap.Error(err),
			zap.String("user_id", v.UserID.String()),
		)
		return fmt.Errorf("create email verification: %w", err)
	}

	return nil
}

func (r *verificationRepository) Consume(ctx context.Context, tokenHash string) (*entity.EmailVerification, error) {
	// Single DELETE ... RETURNING so two concurrent redemptions of the same
	// token cannot both succeed.
	query := `
		DELETE FROM email_verifications
		WHERE token_hash = $1
		RETURNING id, user_id, email, token_hash, expires_at, created_at
	`

	var v entity.EmailVerification
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&v.ID,
		&v.UserID,
		&v.Email,
		&v.TokenHash,
		&v.ExpiresAt,
		&v.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to consume verification token", zap.Error(err))
		return nil, fmt.Errorf("consume verification token: %w", err)
	}

	return &v, nil
}

func (r *verificationRepository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM email_verifications WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete user verifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete verifications for user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *verificationRepository) CleanExpired(ctx context.Context) error {
	query := `DELETE FROM email_verifications WHERE expires_at < $1`

	_, err := r.db.Exec(ctx, query, time.Now())
	if err != nil {
		r.log.Error("Failed to clean expired verifications", zap.Error(err))
		return fmt.Errorf("clean expired verifications: %w", err)
	}

	return nil
}
