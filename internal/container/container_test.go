package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Server:   config.ServerSettings{Env: "test", TrustedOrigins: []string{"*"}},
		Database: config.DatabaseSettings{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1},
		Auth:     config.AuthSettings{JWTSecret: "container-test-secret", TokenTTL: time.Hour},
		Gemini:   config.GeminiSettings{Model: "gemini-2.0-flash", Timeout: time.Second},
		Quiz:     config.QuizSettings{MaxQuestions: 10},
	}
}

func newContainer(t *testing.T, s *config.Settings) *container.Container {
	t.Helper()
	c, err := container.New(context.Background(), s)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutesWired(t *testing.T) {
	c := newContainer(t, testSettings())

	assert.Equal(t, http.StatusOK, serve(c.Router, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusCreated, serve(c.Router, http.MethodPost, "/api/auth/register",
		`{"email":"wired@example.com","password":"pw","name":"W"}`).Code)
	assert.Equal(t, http.StatusOK, serve(c.Router, http.MethodPost, "/api/auth/login",
		`{"email":"wired@example.com","password":"pw"}`).Code)
	assert.Equal(t, http.StatusOK, serve(c.Router, http.MethodGet, "/api/quiz", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(c.Router, http.MethodPost, "/api/quiz/create", `{}`).Code)

	rec := serve(c.Router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
}

func TestRateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	s := testSettings()
	s.Redis = config.RedisSettings{Addr: mr.Addr(), RateLimit: 2, RateLimitEvery: time.Minute}
	c := newContainer(t, s)
	require.NotNil(t, c.Redis)

	body := `{"email":"x@example.com","password":"pw"}`
	assert.Equal(t, http.StatusUnauthorized, serve(c.Router, http.MethodPost, "/api/auth/login", body).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(c.Router, http.MethodPost, "/api/auth/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(c.Router, http.MethodPost, "/api/auth/login", body).Code)
}

func TestNewFailsWithoutDSN(t *testing.T) {
	s := testSettings()
	s.Database.DSN = ""
	_, err := container.New(context.Background(), s)
	assert.Error(t, err)
}
