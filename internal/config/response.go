package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizai/internal/apperror"
	"github.com/sirupsen/logrus"
)

// MaxRequestBodyBytes caps JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// DecodeJSON reads at most MaxRequestBodyBytes from the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("Failed to encode JSON response")
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Success: false, Message: message})
}

// WriteError classifies err, logs it and writes the error envelope.
// Server-side failures are answered with fallback only.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := WithContext(r.Context())
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	entry := log.WithError(err).WithField("kind", kind.String())
	if status >= http.StatusInternalServerError {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Detail != "" {
			entry = entry.WithField("raw_response", appErr.Detail)
		}
		entry.Error(fallback)
	} else {
		entry.Warn("Request rejected")
	}

	Error(w, status, apperror.PublicMessage(err, fallback))
}
