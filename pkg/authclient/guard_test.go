package authclient_test

import (
	"testing"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/pkg/authclient"

	"github.com/stretchr/testify/assert"
)

func snapshot(role entity.Role, verified bool) *authclient.Session {
	return &authclient.Session{
		ID:            "u-1",
		Username:      "alice",
		Email:         "alice@example.com",
		Role:          role,
		EmailVerified: verified,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name            string
		sess            *authclient.Session
		loaded          bool
		requireVerified bool
		roles           []entity.Role
		want            authclient.Decision
	}{
		{
			name: "state unknown renders nothing",
			want: authclient.Pending,
		},
		{
			name:   "anonymous goes to login",
			loaded: true,
			want:   authclient.RedirectLogin,
		},
		{
			name:            "unverified goes to verify page",
			sess:            snapshot(entity.RoleManager, false),
			loaded:          true,
			requireVerified: true,
			want:            authclient.RedirectVerify,
		},
		{
			name:   "no role requirement admits anyone",
			sess:   snapshot(entity.RoleSupplier, true),
			loaded: true,
			want:   authclient.Allow,
		},
		{
			name:   "role outside the set",
			sess:   snapshot(entity.RoleClient, true),
			loaded: true,
			roles:  []entity.Role{entity.RoleManager, entity.RoleEmployee},
			want:   authclient.RedirectUnauthorized,
		},
		{
			name:   "role inside the set",
			sess:   snapshot(entity.RoleEmployee, true),
			loaded: true,
			roles:  []entity.Role{entity.RoleManager, entity.RoleEmployee},
			want:   authclient.Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := authclient.Evaluate(tt.sess, tt.loaded, tt.requireVerified, tt.roles...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "pending", authclient.Pending.String())
	assert.Equal(t, "allow", authclient.Allow.String())
	assert.Equal(t, "redirect-login", authclient.RedirectLogin.String())
	assert.Equal(t, "redirect-verify", authclient.RedirectVerify.String())
	assert.Equal(t, "redirect-unauthorized", authclient.RedirectUnauthorized.String())
}
