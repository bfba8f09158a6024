package wire_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webuild-dashboard/internal/data/repository/memory"
	"webuild-dashboard/internal/wire"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *wire.App {
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

	return wire.Wiring(memory.NewRepository(), mailer, nil, config, zap.NewNop())
}

func doJSON(t *testing.T, app *wire.App, method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "webuild_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// registerAndVerify walks an account through signup and email verification,
// returning its session cookie.
func registerAndVerify(t *testing.T, app *wire.App, username, email, role string) *http.Cookie {
	t.Helper()

	rec, env := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username":  username,
		"password":  "secret123",
		"email":     email,
		"firstName": "Test",
		"lastName":  "User",
		"role":      role,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		VerificationToken string `json:"verificationToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	require.NotEmpty(t, reg.VerificationToken)

	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"token": reg.VerificationToken,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	return sessionCookie(t, rec)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Register.
	rec, env := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"username":  "alice",
		"password":  "secret123",
		"email":     "alice@example.com",
		"firstName": "Alice",
		"lastName":  "Mason",
		"role":      "manager",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		User              struct{ EmailVerified bool } `json:"user"`
		VerificationToken string                       `json:"verificationToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.False(t, reg.User.EmailVerified)
	require.NotEmpty(t, reg.VerificationToken)

	// Login before verification is refused.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "secret123",
	}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Verify, then login succeeds and sets the cookie.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"token": reg.VerificationToken,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// A consumed token reads the same as one that never existed.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"token": reg.VerificationToken,
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	// Check reports the authenticated snapshot.
	rec, env = doJSON(t, app, http.MethodGet, "/api/auth/check", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var check struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.True(t, check.Authenticated)
	assert.Equal(t, "alice", check.User.Username)
	assert.Equal(t, "manager", check.User.Role)

	// Logout revokes the session.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doJSON(t, app, http.MethodGet, "/api/auth/check", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	check.Authenticated = true
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.False(t, check.Authenticated)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	app := newTestApp(t)

	body := map[string]string{
		"username":  "alice",
		"password":  "secret123",
		"email":     "alice@example.com",
		"firstName": "Alice",
		"lastName":  "Mason",
		"role":      "manager",
	}

	rec, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, app, http.MethodPost, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Status)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	app := newTestApp(t)

	rec, _ := doJSON(t, app, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"token": "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckWithoutSession(t *testing.T) {
	app := newTestApp(t)

	rec, env := doJSON(t, app, http.MethodGet, "/api/auth/check", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var check struct {
		Authenticated bool `json:"authenticated"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &check))
	assert.False(t, check.Authenticated)
}

func TestResendVerificationIsGeneric(t *testing.T) {
	app := newTestApp(t)

	known, _ := doJSON(t, app, http.MethodPost, "/api/auth/resend-verification", map[string]string{
		"email": "nobody@example.com",
	}, nil)
	assert.Equal(t, http.StatusOK, known.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/users",
		"/api/projects",
		"/api/tasks",
		"/api/resources/team",
		"/api/clients/client-list",
		"/api/activities",
		"/api/equipment",
	} {
		rec, _ := doJSON(t, app, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRoleMatrix(t *testing.T) {
	app := newTestApp(t)

	manager := registerAndVerify(t, app, "mallory", "mallory@example.com", "manager")
	employee := registerAndVerify(t, app, "evan", "evan@example.com", "employee")
	client := registerAndVerify(t, app, "clara", "clara@example.com", "client")

	tests := []struct {
		name   string
		cookie *http.Cookie
		method string
		path   string
		want   int
	}{
		{"manager lists users", manager, http.MethodGet, "/api/users", http.StatusOK},
		{"employee cannot list users", employee, http.MethodGet, "/api/users", http.StatusForbidden},
		{"client cannot list users", client, http.MethodGet, "/api/users", http.StatusForbidden},

		{"manager sees team roster", manager, http.MethodGet, "/api/resources/team", http.StatusOK},
		{"employee sees team roster", employee, http.MethodGet, "/api/resources/team", http.StatusOK},
		{"client cannot see team roster", client, http.MethodGet, "/api/resources/team", http.StatusForbidden},

		{"manager lists clients", manager, http.MethodGet, "/api/clients/client-list", http.StatusOK},
		{"employee cannot list clients", employee, http.MethodGet, "/api/clients/client-list", http.StatusForbidden},
		{"client cannot list clients", client, http.MethodGet, "/api/clients/client-list", http.StatusForbidden},

		{"client reads projects", client, http.MethodGet, "/api/projects", http.StatusOK},
		{"client reads equipment", client, http.MethodGet, "/api/equipment", http.StatusOK},
		{"client reads activities", client, http.MethodGet, "/api/activities", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, app, tt.method, tt.path, nil, tt.cookie)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestProjectCrudThroughRouter(t *testing.T) {
	app := newTestApp(t)
	manager := registerAndVerify(t, app, "mallory", "mallory@example.com", "manager")
	client := registerAndVerify(t, app, "clara", "clara@example.com", "client")

	// A project needs a client record first.
	rec, env := doJSON(t, app, http.MethodPost, "/api/clients", map[string]string{
		"name":          "Acme Corp",
		"email":         "contact@acme.example",
		"contactPerson": "John Stone",
	}, manager)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	body := map[string]any{
		"name":        "Riverside Tower",
		"description": "Twelve story riverside development",
		"clientId":    created.ID,
		"status":      "on track",
		"startDate":   time.Now().Format(time.RFC3339),
		"endDate":     time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
		"progress":    0,
		"budget":      1_500_000,
		"spent":       0,
	}

	// Clients cannot create projects.
	rec, _ = doJSON(t, app, http.MethodPost, "/api/projects", body, client)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = doJSON(t, app, http.MethodPost, "/api/projects", body, manager)
	require.Equal(t, http.StatusCreated, rec.Code)

	var project struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.Equal(t, "on track", project.Status)

	// Verified clients can read it back.
	rec, _ = doJSON(t, app, http.MethodGet, "/api/projects/"+project.ID, nil, client)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Partial update by the manager.
	rec, env = doJSON(t, app, http.MethodPatch, "/api/projects/"+project.ID, map[string]any{
		"status":   "at risk",
		"progress": 35,
	}, manager)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.Equal(t, "at risk", project.Status)

	// The create and update were recorded on the activity feed.
	rec, env = doJSON(t, app, http.MethodGet, "/api/activities", nil, manager)
	require.Equal(t, http.StatusOK, rec.Code)

	var activities []struct {
		Action string `json:"action"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &activities))
	assert.NotEmpty(t, activities)

	// Tasks and documents hang off the project.
	rec, env = doJSON(t, app, http.MethodPost, "/api/tasks", map[string]any{
		"projectId": project.ID,
		"name":      "Pour foundation",
		"status":    "pending",
		"priority":  "high",
		"dueDate":   time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	}, manager)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = doJSON(t, app, http.MethodGet, "/api/tasks?projectId="+project.ID, nil, client)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Pour foundation", tasks[0].Name)

	rec, _ = doJSON(t, app, http.MethodPost, "/api/documents", map[string]string{
		"projectId": project.ID,
		"name":      "Site survey",
		"type":      "pdf",
		"url":       "https://files.example/survey.pdf",
	}, manager)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = doJSON(t, app, http.MethodGet, "/api/documents?projectId="+project.ID, nil, client)
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Site survey", docs[0].Name)
}
