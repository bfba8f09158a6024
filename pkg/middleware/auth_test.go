package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository/memory"
	"webuild-dashboard/internal/usecase"
	"webuild-dashboard/pkg/middleware"
	"webuild-dashboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func session(role entity.Role, verified bool) *entity.Session {
	return &entity.Session{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Token:         uuid.New(),
		UserID:        uuid.New(),
		Username:      "alice",
		Email:         "alice@example.com",
		Role:          role,
		EmailVerified: verified,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name            string
		sess            *entity.Session
		requireVerified bool
		roles           []entity.Role
		want            error
	}{
		{
			name: "no session",
			want: usecase.ErrUnauthenticated,
		},
		{
			name: "authenticated is enough without requirements",
			sess: session(entity.RoleClient, false),
		},
		{
			name:            "unverified blocked when verification required",
			sess:            session(entity.RoleManager, false),
			requireVerified: true,
			want:            usecase.ErrUnverified,
		},
		{
			name:  "unverified blocked before role check",
			sess:  session(entity.RoleManager, false),
			roles: []entity.Role{entity.RoleManager},
			want:  usecase.ErrUnverified,
		},
		{
			name:            "verified passes verification gate",
			sess:            session(entity.RoleSupplier, true),
			requireVerified: true,
		},
		{
			name:  "role outside the set",
			sess:  session(entity.RoleClient, true),
			roles: []entity.Role{entity.RoleManager, entity.RoleEmployee},
			want:  usecase.ErrForbidden,
		},
		{
			name:  "role inside the set",
			sess:  session(entity.RoleEmployee, true),
			roles: []entity.Role{entity.RoleManager, entity.RoleEmployee},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := middleware.Authorize(tt.sess, tt.requireVerified, tt.roles...)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestAuthorizeDeterministic(t *testing.T) {
	sess := session(entity.RoleManager, true)
	for i := 0; i < 3; i++ {
		assert.NoError(t, middleware.Authorize(sess, true, entity.RoleManager))
	}
}

func TestRequireAuthChain(t *testing.T) {
	repo := memory.NewRepository()
	log := zap.NewNop()
	const cookieName = "webuild_session"

	live := session(entity.RoleManager, true)
	require.NoError(t, repo.Session.Create(t.Context(), live))

	unverified := session(entity.RoleManager, false)
	require.NoError(t, repo.Session.Create(t.Context(), unverified))

	expired := session(entity.RoleManager, true)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Session.Create(t.Context(), expired))

	handler := middleware.RequireAuth(repo.Session, cookieName, log)(
		middleware.RequireRoles(log, entity.RoleManager)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sess, ok := utils.GetSessionFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "alice", sess.Username)
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	do := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do(live.Token.String()))
	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do(uuid.NewString()))
	assert.Equal(t, http.StatusUnauthorized, do(expired.Token.String()))
	assert.Equal(t, http.StatusForbidden, do(unverified.Token.String()))
}
