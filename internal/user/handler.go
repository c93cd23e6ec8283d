package user

import (
	"net/http"

	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/config"
)

type Handler struct {
	service  UserService
	sessions *auth.Handler
}

func NewHandler(s UserService, sessions *auth.Handler) *Handler {
	return &Handler{service: s, sessions: sessions}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var in RegisterInput
	if err := config.DecodeJSON(w, r, &in); err != nil {
		log.WithError(err).Warn("Invalid register request body")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.service.Register(r.Context(), in)
	if err != nil {
		config.WriteError(w, r, err, "Internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "User registered successfully",
		Data:    u,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var in LoginInput
	if err := config.DecodeJSON(w, r, &in); err != nil {
		log.WithError(err).Warn("Invalid login request body")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, expiresAt, err := h.service.Login(r.Context(), in)
	if err != nil {
		config.WriteError(w, r, err, "Internal server error")
		return
	}

	h.sessions.SetSessionCookie(w, result.Token, expiresAt)
	config.JSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Unauthenticated request to /me")
		config.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		config.WriteError(w, r, err, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, envelope{Success: true, Message: "OK", Data: u})
}
