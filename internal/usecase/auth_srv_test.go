package usecase_test

import (
	"context"
	"testing"
	"time"

	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/data/repository/memory"
	"webuild-dashboard/internal/dto/request"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{
			SessionTTL:      24 * time.Hour,
			VerificationTTL: 24 * time.Hour,
			CookieName:      "webuild_session",
		},
	}
}

func newAuthService(t *testing.T, config *utils.Config) (usecase.AuthService, *repository.Repository) {
	t.Helper()

	repo := memory.NewRepository()
	mailer, err := mail.NewClient(utils.SMTPConfig{}, "http://localhost:5000", zap.NewNop())
	require.NoError(t, err)

	return usecase.NewAuthService(repo, mailer, config, zap.NewNop()), repo
}

func registerReq(username, email, role string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:  username,
		Password:  "secret123",
		Email:     email,
		FirstName: "Alice",
		LastName:  "Mason",
		Role:      role,
	}
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)
	require.NotEmpty(t, reg.VerificationToken)
	assert.False(t, reg.User.EmailVerified)
	assert.Equal(t, "alice", reg.User.Username)

	// Credentials are valid but the email is not verified yet.
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrEmailNotVerified)

	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	sess, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "alice@example.com", sess.Email)
	assert.True(t, sess.EmailVerified)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), sess.ExpiresAt, time.Minute)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())

	_, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com", "admin"))
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestRegisterNormalizesRoleCase(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())

	reg, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com", "Manager"))
	require.NoError(t, err)
	assert.Equal(t, "manager", string(reg.User.Role))
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice", "other@example.com", "client"))
	assert.ErrorIs(t, err, usecase.ErrConflict)

	_, err = svc.Register(ctx, registerReq("bob", "alice@example.com", "client"))
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestVerifyEmailTokenSingleUse(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "employee"))
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	// The token was consumed on first redemption.
	err = svc.VerifyEmail(ctx, reg.VerificationToken)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())

	err := svc.VerifyEmail(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	err = svc.VerifyEmail(context.Background(), "")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	config := testConfig()
	config.Auth.VerificationTTL = -time.Minute
	svc, _ := newAuthService(t, config)
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "client"))
	require.NoError(t, err)

	err = svc.VerifyEmail(ctx, reg.VerificationToken)
	assert.ErrorIs(t, err, usecase.ErrExpired)

	// An expired token still cannot be redeemed later; it was consumed.
	err = svc.VerifyEmail(ctx, reg.VerificationToken)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestResendVerificationSupersedesToken(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "supplier"))
	require.NoError(t, err)

	require.NoError(t, svc.ResendVerification(ctx, "alice@example.com"))

	// The original token was invalidated by the resend.
	err = svc.VerifyEmail(ctx, reg.VerificationToken)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestResendVerificationRevealsNothing(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	// Unknown address.
	assert.NoError(t, svc.ResendVerification(ctx, "nobody@example.com"))

	// Already verified account.
	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))
	assert.NoError(t, svc.ResendVerification(ctx, "alice@example.com"))
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	// Unknown user and wrong password produce the same error.
	_, err = svc.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	sess, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	current, err := svc.CurrentSession(ctx, sess.Token.String())
	require.NoError(t, err)
	require.NotNil(t, current)

	require.NoError(t, svc.Logout(ctx, sess.Token.String()))

	current, err = svc.CurrentSession(ctx, sess.Token.String())
	require.NoError(t, err)
	assert.Nil(t, current)

	// Revoking again, or revoking garbage, still succeeds.
	assert.NoError(t, svc.Logout(ctx, sess.Token.String()))
	assert.NoError(t, svc.Logout(ctx, "no-such-token"))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestCurrentSessionWithoutCookie(t *testing.T) {
	svc, _ := newAuthService(t, testConfig())

	sess, err := svc.CurrentSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestExpiredSessionReadsAsAbsent(t *testing.T) {
	config := testConfig()
	config.Auth.SessionTTL = -time.Minute
	svc, _ := newAuthService(t, config)
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "manager"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	sess, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	current, err := svc.CurrentSession(ctx, sess.Token.String())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionSnapshotSurvivesUserChanges(t *testing.T) {
	svc, repo := newAuthService(t, testConfig())
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerReq("alice", "alice@example.com", "employee"))
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, reg.VerificationToken))

	sess, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	// Mutate the account after login.
	user, err := repo.User.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	user.FirstName = "Alicia"
	require.NoError(t, repo.User.Update(ctx, user))

	current, err := svc.CurrentSession(ctx, sess.Token.String())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Alice", current.FirstName)
}
