package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/denmor86/ya-pickupdesk/internal/services"
	"github.com/denmor86/ya-pickupdesk/internal/settings"
	"github.com/denmor86/ya-pickupdesk/internal/validators"
	"go.uber.org/zap"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: services.Describe(err)})
}

// statusOf - HTTP код для ошибки сервиса
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, services.ErrScanDropped),
		errors.Is(err, services.ErrSessionActive),
		errors.Is(err, services.ErrBusy),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, scanner.ErrWrongQRType),
		errors.Is(err, scanner.ErrEmptyScan),
		errors.Is(err, validators.ErrTokenTooShort),
		errors.Is(err, services.ErrIssueUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, settings.ErrEmptyURL),
		errors.Is(err, settings.ErrInvalidScheme),
		errors.Is(err, services.ErrNotConfigured):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
