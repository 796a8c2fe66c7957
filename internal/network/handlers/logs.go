package handlers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"go.uber.org/zap"
)

// LogsResponse - журнал для просмотра
type LogsResponse struct {
	Path    string          `json:"path,omitempty"`
	Count   int             `json:"count"`
	Entries []journal.Entry `json:"entries"`
}

// GetLogsHandler — просмотр журнала, старые записи первыми
func GetLogsHandler(j *journal.Journal) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries := j.Entries()
		writeJSON(w, http.StatusOK, LogsResponse{Path: j.Path(), Count: len(entries), Entries: entries})
	})
}

// ExportLogsHandler — выгрузка журнала: файл целиком, если он есть,
// иначе записи из памяти
func ExportLogsHandler(j *journal.Journal) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := "pickup_desk.log"
		var body io.Reader
		if path := j.Path(); path != "" {
			name = filepath.Base(path)
			file, err := os.Open(path)
			switch {
			case err == nil:
				defer file.Close()
				body = file
			case !errors.Is(err, fs.ErrNotExist):
				logger.Error("Failed to open journal file:", zap.Error(err))
				http.Error(w, "Failed to open log file", http.StatusInternalServerError)
				return
			}
		}
		if body == nil {
			var b strings.Builder
			for _, entry := range j.Entries() {
				b.WriteString(entry.Line())
				b.WriteByte('\n')
			}
			body = strings.NewReader(b.String())
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, body); err != nil {
			logger.Error("Failed to write logs:", zap.Error(err))
		}
	})
}

// ClearLogsHandler — очистка журнала в памяти и в файле
func ClearLogsHandler(j *journal.Journal) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := j.Clear(); err != nil {
			logger.Error("Failed to clear journal file:", zap.Error(err))
			http.Error(w, "Failed to clear log file", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
