package usecase

import (
	"context"
	"fmt"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/dto/response"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*entity.Session, error)
}

type authService struct {
	repo   *repository.Repository
	mailer mail.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mailer mail.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mailer: mailer,
		config: config,
		log:    log,
	}
}

// Register creates an unverified account and issues its first verification
// token. The token is emailed; a mail failure is logged but never fails the
// registration.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role must be one of manager, employee, client, supplier", ErrInvalidInput)
	}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %w", ErrConflict)
	}

	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          role,
		Avatar:        req.Avatar,
		EmailVerified: false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	token, err := s.issueVerification(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return &response.RegisterResponse{
		User:              response.UserToResponse(user),
		VerificationToken: token,
	}, nil
}

// VerifyEmail redeems a verification token. The store deletes the token in
// the same statement that reads it, so a token can only ever be redeemed
// once; the second attempt sees NotFound.
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: verification token is required", ErrInvalidInput)
	}

	v, err := s.repo.Verification.Consume(ctx, utils.HashToken(token))
	if err != nil {
		s.log.Error("Failed to consume verification token", zap.Error(err))
		return fmt.Errorf("verify email: %w", err)
	}
	if v == nil {
		return fmt.Errorf("verification token %w", ErrNotFound)
	}

	if time.Now().After(v.ExpiresAt) {
		return fmt.Errorf("verification token %w", ErrExpired)
	}

	if err := s.repo.User.SetEmailVerified(ctx, v.UserID); err != nil {
		s.log.Error("Failed to mark email verified",
			zap.Error(err),
			zap.String("user_id", v.UserID.String()),
		)
		return fmt.Errorf("verify email: %w", err)
	}

	s.log.Info("Email verified",
		zap.String("user_id", v.UserID.String()),
		zap.String("email", v.Email),
	)

	return nil
}

// ResendVerification issues a fresh token for an unverified account. It
// reports nothing about whether the email exists; the handler returns the
// same response either way.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up email for resend", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("resend verification: %w", err)
	}

	if user == nil || user.EmailVerified {
		return nil
	}

	if _, err := s.issueVerification(ctx, user); err != nil {
		return err
	}

	s.log.Info("Verification resent", zap.String("user_id", user.ID.String()))
	return nil
}

// Login validates credentials and establishes a session. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error) {
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		s.log.Warn("Unverified login attempt", zap.String("user_id", user.ID.String()))
		return nil, ErrEmailNotVerified
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Token:         uuid.New(),
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		ExpiresAt:     time.Now().Add(s.config.Auth.SessionTTL),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return session, nil
}

// Logout revokes the session. Revoking an unknown token still succeeds.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

// CurrentSession resolves a cookie token to its live session snapshot. A
// missing, expired, or revoked session returns (nil, nil).
func (s *authService) CurrentSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		s.log.Error("Failed to look up session", zap.Error(err))
		return nil, fmt.Errorf("current session: %w", err)
	}

	return session, nil
}

// issueVerification stores a fresh token (superseding any outstanding one)
// and emails it. Only the mail step is allowed to fail silently.
func (s *authService) issueVerification(ctx context.Context, user *entity.User) (string, error) {
	token, tokenHash, err := utils.GenerateVerificationToken()
	if err != nil {
		s.log.Error("Failed to generate verification token", zap.Error(err))
		return "", fmt.Errorf("issue verification: %w", err)
	}

	v := &entity.EmailVerification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Email:     user.Email,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.config.Auth.VerificationTTL),
	}

	if err := s.repo.Verification.Create(ctx, v); err != nil {
		s.log.Error("Failed to store verification token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return "", fmt.Errorf("issue verification: %w", err)
	}

	if err := s.mailer.SendVerificationEmail(user.Email, token); err != nil {
		s.log.Error("Failed to send verification email",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		// Token issuance already succeeded; the user can ask for a resend.
	}

	return token, nil
}
