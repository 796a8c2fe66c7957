package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/denmor86/ya-pickupdesk/internal/services"
	"go.uber.org/zap"
)

// CameraRequest - строка, распознанная камерой
type CameraRequest struct {
	Text string `json:"text"`
}

// KeyRequest - одно нажатие HID-сканера
type KeyRequest struct {
	Key   string    `json:"key"`
	Enter bool      `json:"enter"`
	At    time.Time `json:"at"`
}

// KeysRequest - пачка нажатий
type KeysRequest struct {
	Keys []KeyRequest `json:"keys"`
}

// CameraScanHandler — приём результата распознавания камеры
func CameraScanHandler(desk *services.Desk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CameraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		session, err := desk.Camera(req.Text)
		writeScanResult(w, session, err)
	})
}

// FieldScanHandler — нажатия в поле ввода с фокусом
func FieldScanHandler(desk *services.Desk) http.HandlerFunc {
	return keysHandler(desk.FieldKeys)
}

// InterceptScanHandler — нажатия, перехваченные экраном
func InterceptScanHandler(desk *services.Desk) http.HandlerFunc {
	return keysHandler(desk.InterceptKeys)
}

func keysHandler(feed func([]scanner.Key) (*services.Session, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req KeysRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		keys := make([]scanner.Key, 0, len(req.Keys))
		for _, k := range req.Keys {
			if k.Enter {
				keys = append(keys, scanner.Key{Enter: true, At: k.At})
				continue
			}
			// строка из нескольких символов - серия нажатий с одним временем
			for _, ch := range k.Key {
				keys = append(keys, scanner.Key{Rune: ch, At: k.At})
			}
		}
		session, err := feed(keys)
		if session == nil && err == nil {
			// сканирование ещё не завершено
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeScanResult(w, session, err)
	})
}

func writeScanResult(w http.ResponseWriter, session *services.Session, err error) {
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to handle scan:", zap.Error(err))
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusAccepted, session.View())
}
