package quiz

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var authorID *uint
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		authorID = &id
	}

	var in CreateQuizRequest
	if err := config.DecodeJSON(w, r, &in); err != nil {
		log.WithError(err).Warn("Invalid create quiz request body")
		config.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := h.service.GenerateQuiz(r.Context(), authorID, in)
	if err != nil {
		config.WriteError(w, r, err, msgCreateFailed)
		return
	}

	config.JSON(w, http.StatusCreated, createResponse{
		Success: true,
		Message: "Quiz created successfully",
		Quiz:    q,
	})
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	query := r.URL.Query()

	f := ListFilter{
		PublicOnly: query.Get("isPublic") == "true",
		Query:      query.Get("q"),
	}

	if raw := query.Get("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.WithField("id", raw).Warn("Invalid quiz id")
			config.Error(w, http.StatusBadRequest, "Invalid quiz id")
			return
		}
		quizID := uint(id)
		f.ID = &quizID
	}

	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		f.UserID = &userID
	}

	quizzes, err := h.service.ListQuizzes(r.Context(), f)
	if err != nil {
		config.WriteError(w, r, err, "Server error fetching quizzes")
		return
	}

	config.JSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(quizzes),
		Data:    quizzes,
	})
}
