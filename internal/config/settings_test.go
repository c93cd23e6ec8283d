package config_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saulo-duarte/quizai/internal/apperror"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		require.ErrorIs(t, err, config.ErrMissingJWTSecret)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_TIMEOUT", "")
		t.Setenv("TOKEN_TTL", "")

		s, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, s.Auth.TokenTTL)
		assert.Equal(t, 60*time.Second, s.Gemini.Timeout)
		assert.Equal(t, 50, s.Quiz.MaxQuestions)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_TIMEOUT", "45")
		t.Setenv("TOKEN_TTL", "2h")
		t.Setenv("TRUSTED_ORIGINS", "http://a.test, http://b.test ,")
		t.Setenv("QUIZ_MAX_QUESTIONS", "not-a-number")

		s, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, s.Gemini.Timeout)
		assert.Equal(t, 2*time.Hour, s.Auth.TokenTTL)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.Server.TrustedOrigins)
		assert.Equal(t, 50, s.Quiz.MaxQuestions)
	})
}

func TestOpenDatabase(t *testing.T) {
	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := config.OpenDatabase(context.Background(), config.DatabaseSettings{Driver: "oracle", DSN: "x"})
		require.Error(t, err)
	})

	t.Run("SQLiteInMemory", func(t *testing.T) {
		db, err := config.OpenDatabase(context.Background(), config.DatabaseSettings{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1})
		require.NoError(t, err)

		var foreignKeys int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
		assert.Equal(t, 1, foreignKeys)
		require.NoError(t, config.CloseDatabase(db))
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperror.Validation("Invalid level"), http.StatusBadRequest, "Invalid level"},
		{"auth", apperror.Auth("Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"format", apperror.UpstreamFormat("Failed to parse AI response.", "raw model text", errors.New("eof")), http.StatusInternalServerError, "Failed to parse AI response."},
		{"unclassified", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			config.WriteError(rec, req, tc.err, "Internal server error")

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "raw model text")
			assert.NotContains(t, rec.Body.String(), "connection refused")

			var body config.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.wantMsg, body.Message)
		})
	}
}
