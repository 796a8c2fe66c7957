package handlers

import (
	"net/http"

	"github.com/denmor86/ya-pickupdesk/internal/services"
)

// GetSessionHandler — текущий экран заказа
func GetSessionHandler(desk *services.Desk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := desk.Session()
		if err != nil {
			writeError(w, statusOf(err), err)
			return
		}
		writeJSON(w, http.StatusOK, session.View())
	})
}

// RetryHandler — повторная загрузка заказа
func RetryHandler(desk *services.Desk) http.HandlerFunc {
	return sessionAction(desk.Retry, http.StatusAccepted)
}

// ConfirmIssueHandler — подтверждение выдачи
func ConfirmIssueHandler(desk *services.Desk) http.HandlerFunc {
	return sessionAction(desk.Confirm, http.StatusAccepted)
}

// RequestIssueHandler — кнопка "выдать заказ"
func RequestIssueHandler(desk *services.Desk) http.HandlerFunc {
	return sessionAction(withSession(desk, (*services.Session).RequestIssue), http.StatusOK)
}

// CancelIssueHandler — отказ в диалоге подтверждения
func CancelIssueHandler(desk *services.Desk) http.HandlerFunc {
	return sessionAction(withSession(desk, (*services.Session).CancelIssue), http.StatusOK)
}

// CloseSessionHandler — закрытие экрана заказа
func CloseSessionHandler(desk *services.Desk) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		desk.CloseSession()
		w.WriteHeader(http.StatusNoContent)
	})
}

func withSession(desk *services.Desk, action func(*services.Session) error) func() (*services.Session, error) {
	return func() (*services.Session, error) {
		session, err := desk.Session()
		if err != nil {
			return nil, err
		}
		return session, action(session)
	}
}

func sessionAction(action func() (*services.Session, error), okStatus int) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := action()
		if err != nil {
			writeError(w, statusOf(err), err)
			return
		}
		writeJSON(w, okStatus, session.View())
	})
}
