package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/ratelimit"
	"github.com/saulo-duarte/quizai/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	tokens, err := auth.NewJWTManager("user-handler-test-secret", 24*time.Hour)
	require.NoError(t, err)

	sessions := auth.NewHandler(false)
	c := user.NewUserContainer(newTestDB(t), tokens, sessions)

	r := chi.NewRouter()
	r.Mount("/api/auth", user.Routes(c.Handler, auth.NewMiddleware(tokens), ratelimit.NewNoop(), sessions))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestAuthEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec, resp := do(t, h, http.MethodPost, "/api/auth/register", `{"email":"eve@example.com","password":"pw123456","name":"Eve"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotContains(t, string(resp.Data), "password")
	assert.Contains(t, string(resp.Data), `"email":"eve@example.com"`)

	rec, resp = do(t, h, http.MethodPost, "/api/auth/register", `{"email":"eve@example.com","password":"x","name":"Eve"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", resp.Message)

	rec, resp = do(t, h, http.MethodPost, "/api/auth/register", `{"email":"eve2@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", resp.Message)

	rec, resp = do(t, h, http.MethodPost, "/api/auth/login", `{"email":"eve@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)

	rec, resp = do(t, h, http.MethodPost, "/api/auth/login", `{"email":"eve@example.com","password":"pw123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", resp.Message)

	var login struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.Token)
	assert.NotContains(t, login.User, "password")
	assert.NotEmpty(t, rec.Result().Cookies())

	rec, resp = do(t, h, http.MethodGet, "/api/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(resp.Data), "eve@example.com")

	rec, _ = do(t, h, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterBadBody(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"Malformed", `{not json`},
		{"Oversized", `{"email":"big@example.com","password":"pw","name":"` + strings.Repeat("n", config.MaxRequestBodyBytes) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := do(t, h, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid request body", resp.Message)
		})
	}
}
