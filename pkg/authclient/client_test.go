package authclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository/memory"
	"webuild-dashboard/internal/wire"
	"webuild-dashboard/pkg/authclient"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// startServer runs the full router and seeds a verified manager account.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	config := &utils.Config{
		App: utils.AppConfig{Name: "webuild-dashboard", Env: "test", BaseURL: "http://localhost:5000"},
		Auth: utils.AuthConfig{
			SessionTTL:      24 * time.Hour,
			VerificationTTL: 24 * time.Hour,
			CookieName:      "webuild_session",
		},
	}

	mailer, err := mail.NewClient(utils.SMTPConfig{}, config.App.BaseURL, zap.NewNop())
	require.NoError(t, err)

	app := wire.Wiring(memory.NewRepository(), mailer, nil, config, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)

	register := map[string]string{
		"username":  "alice",
		"password":  "secret123",
		"email":     "alice@example.com",
		"firstName": "Alice",
		"lastName":  "Mason",
		"role":      "manager",
	}
	raw, err := json.Marshal(register)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/auth/register", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env struct {
		Data struct {
			VerificationToken string `json:"verificationToken"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	raw, err = json.Marshal(map[string]string{"token": env.Data.VerificationToken})
	require.NoError(t, err)

	resp, err = http.Post(srv.URL+"/api/auth/verify-email", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return srv
}

func TestClientSessionLifecycle(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	c, err := authclient.NewClient(srv.URL)
	require.NoError(t, err)

	// Nothing known before the first round trip.
	_, loaded := c.Session()
	assert.False(t, loaded)
	assert.Equal(t, authclient.Pending, c.Guard(true))

	// Anonymous refresh resolves to no session.
	sess, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, authclient.RedirectLogin, c.Guard(true))

	sess, err = c.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, entity.RoleManager, sess.Role)
	assert.True(t, sess.EmailVerified)

	assert.Equal(t, authclient.Allow, c.Guard(true, entity.RoleManager))
	assert.Equal(t, authclient.RedirectUnauthorized, c.Guard(true, entity.RoleSupplier))

	// The cookie jar carries the session across a fresh check.
	sess, err = c.Refresh(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "alice", sess.Username)

	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, authclient.RedirectLogin, c.Guard(false))

	// And the server agrees the session is gone.
	sess, err = c.Refresh(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestClientLoginFailure(t *testing.T) {
	srv := startServer(t)

	c, err := authclient.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice", "wrong")

	var apiErr *authclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
