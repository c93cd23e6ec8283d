package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/quizai/internal/auth"
)

const testSecret = "a-long-and-sufficiently-random-test-secret"
const testUserID uint = 42

func TestNewJWTManager(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		if _, err := auth.NewJWTManager("", time.Hour); !errors.Is(err, auth.ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		m, err := auth.NewJWTManager(testSecret, 0)
		if err != nil {
			t.Fatalf("NewJWTManager failed: %v", err)
		}
		if m.TTL() != 24*time.Hour {
			t.Errorf("expected 24h default ttl, got %s", m.TTL())
		}
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	m, err := auth.NewJWTManager(testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, expiresAt, err := m.Generate(testUserID)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if d := time.Until(expiresAt); d < 23*time.Hour || d > 24*time.Hour {
			t.Errorf("expiry should be ~24h away, got %s", d)
		}

		claims, err := m.Validate(tokenStr)
		if err != nil {
			t.Fatalf("Validate failed unexpectedly: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. expected %d, got %d", testUserID, claims.UserID)
		}
		if claims.Subject != "42" {
			t.Errorf("wrong subject: %q", claims.Subject)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, _, err := m.GenerateWithTTL(testUserID, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateWithTTL failed: %v", err)
		}

		_, err = m.Validate(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("expected %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		other, _ := auth.NewJWTManager("a-different-secret-entirely", time.Hour)
		tokenStr, _, err := other.Generate(testUserID)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = m.Validate(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("expected signature error, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := m.Validate("not.a.token"); err == nil {
			t.Fatal("Validate should reject malformed tokens")
		}
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
			UserID: testUserID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("signing with none failed: %v", err)
		}
		if _, err := m.Validate(tokenStr); err == nil {
			t.Fatal("Validate should reject alg=none tokens")
		}
	})
}
