package handlers

import (
	"net/http"

	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"github.com/denmor86/ya-pickupdesk/internal/services"
)

// StatusResponse - состояние главного экрана
type StatusResponse struct {
	Gate             string `json:"gate"`
	APIURL           string `json:"api_url"`
	Configured       bool   `json:"configured"`
	SessionOpen      bool   `json:"session_open"`
	SettingsDegraded bool   `json:"settings_degraded,omitempty"`
	JournalPath      string `json:"journal_path,omitempty"`
}

// StatusHandler — готовность к сканированию и адрес API
func StatusHandler(desk *services.Desk, m *services.SettingsManager, j *journal.Journal) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		url := m.BaseURL()
		_, err := desk.Session()
		writeJSON(w, http.StatusOK, StatusResponse{
			Gate:             desk.GateState().String(),
			APIURL:           url,
			Configured:       url != "",
			SessionOpen:      err == nil,
			SettingsDegraded: m.Degraded(),
			JournalPath:      j.Path(),
		})
	})
}
