package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
)

// statusRecorder запоминает код и размер ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.status = statusCode
}

// LogHandle — middleware-логер для входящих HTTP-запросов.
// Успешные GET пишутся на уровне debug: экран опрашивает состояние постоянно.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		h.ServeHTTP(rec, r)

		log := logger.Info
		if r.Method == http.MethodGet && rec.status < http.StatusBadRequest {
			log = logger.Debug
		}
		log("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", rec.status,
			"duration", time.Since(start),
			"size", rec.size,
		)
	})
}
