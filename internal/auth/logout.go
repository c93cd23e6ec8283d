package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/quizai/internal/config"
)

const SessionCookieName = "jwt"

type Handler struct {
	secureCookies bool
}

func NewHandler(secureCookies bool) *Handler {
	return &Handler{secureCookies: secureCookies}
}

func (h *Handler) SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: h.sameSite(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: h.sameSite(),
	})

	config.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

// SameSite=None is only accepted by browsers on secure cookies.
func (h *Handler) sameSite() http.SameSite {
	if h.secureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
