package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/services"
	"github.com/denmor86/ya-pickupdesk/internal/settings"
	"go.uber.org/zap"
)

// ProbeResponse - результат проверки соединения
type ProbeResponse struct {
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// GetSettingsHandler — текущие настройки
func GetSettingsHandler(m *services.SettingsManager) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.Current())
	})
}

// SaveSettingsHandler — сохранение адреса API
func SaveSettingsHandler(m *services.SettingsManager) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req settings.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		saved, err := m.Save(req.APIBaseURL)
		if err != nil {
			writeError(w, statusOf(err), err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	})
}

// ProbeHandler — проверка соединения с сервером. Пустой адрес - проверка сохранённого.
func ProbeHandler(m *services.SettingsManager) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req settings.Settings
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.Warn("Invalid request format:", zap.Error(err))
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}
		}
		status, err := m.Probe(r.Context(), req.APIBaseURL)
		if err != nil {
			if code := statusOf(err); code == http.StatusBadRequest {
				writeError(w, code, err)
				return
			}
			writeJSON(w, http.StatusOK, ProbeResponse{StatusCode: status, Error: services.Describe(err)})
			return
		}
		writeJSON(w, http.StatusOK, ProbeResponse{Reachable: true, StatusCode: status})
	})
}
