package services

import (
	"context"
	"errors"
	"sync"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/google/uuid"
)

var (
	ErrBusy              = errors.New("request already in progress")
	ErrSessionClosed     = errors.New("session closed")
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrIssueUnavailable  = errors.New("order cannot be issued in its current status")
	ErrIssueRejected     = errors.New("order service refused to issue the order")
	ErrNotConfigured     = errors.New("API URL is not configured")
)

// SessionState - состояние экрана заказа
type SessionState int

const (
	StateIdle SessionState = iota
	StateLoading
	StateDisplayed
	StateConfirmPending
	StateIssuing
	StateIssued
	StateIssueFailed
	StateLoadFailed
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDisplayed:
		return "displayed"
	case StateConfirmPending:
		return "confirm_pending"
	case StateIssuing:
		return "issuing"
	case StateIssued:
		return "issued"
	case StateIssueFailed:
		return "issue_failed"
	case StateLoadFailed:
		return "load_failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// IssueAvailability - можно ли выдать заказ и подпись кнопки
type IssueAvailability struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// AvailabilityFor - выдача разрешена только для статуса ready_for_pickup
func AvailabilityFor(status models.OrderStatus) IssueAvailability {
	switch status {
	case models.OrderStatusReadyForPickup:
		return IssueAvailability{Enabled: true, Label: "Issue order"}
	case models.OrderStatusIssued:
		return IssueAvailability{Enabled: false, Label: "Order already issued"}
	default:
		return IssueAvailability{Enabled: false, Label: "Order is not ready for issue"}
	}
}

// Session - один цикл от сканирования до выдачи заказа.
// Переходы выполняются под мьютексом, сетевые вызовы - без него.
type Session struct {
	mu        sync.Mutex
	id        string
	token     string
	oversized bool
	source    scanner.Source
	client    OrderClient
	urls      BaseURLSource
	state     SessionState
	order     *models.OrderSnapshot
	lastErr   error
	ctx       context.Context
	cancel    context.CancelFunc
	onClose   func(*Session)
}

// NewSession - сессия в состоянии Idle. Заказ загружается вызовом Load.
func NewSession(token string, source scanner.Source, client OrderClient, urls BaseURLSource) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:     uuid.NewString(),
		token:  token,
		source: source,
		client: client,
		urls:   urls,
		state:  StateIdle,
		ctx:    ctx,
		cancel: cancel,
	}
}

// ID - идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// State - текущее состояние
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err - ошибка последнего неудачного запроса
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Order - загруженный заказ или nil
func (s *Session) Order() *models.OrderSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// Load - загрузка заказа по токену. Допустима из Idle и LoadFailed.
func (s *Session) Load() error {
	call, err := s.beginLoad()
	if err != nil {
		return err
	}
	return call()
}

// RequestIssue - запрос подтверждения выдачи
func (s *Session) RequestIssue() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.busy(); err != nil {
		return err
	}
	if s.state != StateDisplayed && s.state != StateIssueFailed {
		return ErrInvalidTransition
	}
	if s.order == nil || !AvailabilityFor(s.order.Status).Enabled {
		return ErrIssueUnavailable
	}
	s.state = StateConfirmPending
	logger.Info("Issue confirmation requested, order:", s.order.OrderNumber)
	return nil
}

// CancelIssue - отказ от выдачи в диалоге подтверждения
func (s *Session) CancelIssue() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return ErrSessionClosed
	}
	if s.state != StateConfirmPending {
		return ErrInvalidTransition
	}
	s.state = StateDisplayed
	logger.Info("Issue cancelled by operator")
	return nil
}

// ConfirmIssue - выдача заказа после подтверждения
func (s *Session) ConfirmIssue() error {
	call, err := s.beginIssue()
	if err != nil {
		return err
	}
	return call()
}

// Close - закрытие экрана: незавершённый запрос отменяется, его ответ отбрасывается
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	s.cancel()
	onClose := s.onClose
	s.mu.Unlock()

	logger.Debug("Session closed:", s.id)
	if onClose != nil {
		onClose(s)
	}
}

func (s *Session) busy() error {
	switch s.state {
	case StateClosed:
		return ErrSessionClosed
	case StateLoading, StateIssuing:
		return ErrBusy
	}
	return nil
}

// beginLoad переводит сессию в Loading и возвращает сам запрос
func (s *Session) beginLoad() (func() error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.busy(); err != nil {
		return nil, err
	}
	if s.state != StateIdle && s.state != StateLoadFailed {
		return nil, ErrInvalidTransition
	}
	s.state = StateLoading
	s.lastErr = nil
	ctx := s.ctx

	return func() error {
		baseURL := s.urls.BaseURL()
		if baseURL == "" {
			return s.finishLoad(nil, ErrNotConfigured)
		}
		logger.Info("Loading order by token:", models.MaskToken(s.token))
		order, err := s.client.LookupByToken(ctx, baseURL, s.token)
		return s.finishLoad(order, err)
	}, nil
}

func (s *Session) finishLoad(order *models.OrderSnapshot, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		logger.Debug("Discarding lookup result of closed session:", s.id)
		return ErrSessionClosed
	}
	if err != nil {
		s.state = StateLoadFailed
		s.lastErr = err
		logger.Error("Order lookup failed:", err)
		return err
	}
	s.state = StateDisplayed
	s.order = order
	logger.Infof("Order %s loaded: status=%s items=%d", order.OrderNumber, order.Status, order.ItemsCount())
	if availability := AvailabilityFor(order.Status); !availability.Enabled {
		logger.Warnf("Order %s: %s", order.OrderNumber, availability.Label)
	}
	return nil
}

// beginIssue переводит сессию в Issuing и возвращает сам запрос
func (s *Session) beginIssue() (func() error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.busy(); err != nil {
		return nil, err
	}
	if s.state != StateConfirmPending {
		return nil, ErrInvalidTransition
	}
	s.state = StateIssuing
	s.lastErr = nil
	ctx := s.ctx
	number := s.order.OrderNumber

	return func() error {
		baseURL := s.urls.BaseURL()
		if baseURL == "" {
			return s.finishIssue(ErrNotConfigured)
		}
		logger.Info("Issuing order:", number)
		ok, err := s.client.IssueByToken(ctx, baseURL, s.token)
		if err == nil && !ok {
			err = ErrIssueRejected
		}
		return s.finishIssue(err)
	}, nil
}

func (s *Session) finishIssue(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		logger.Debug("Discarding issue result of closed session:", s.id)
		return ErrSessionClosed
	}
	if err != nil {
		s.state = StateIssueFailed
		s.lastErr = err
		logger.Error("Order issue failed:", err)
		return err
	}
	s.state = StateIssued
	logger.Infof("Order %s issued, status changed to %s", s.order.OrderNumber, models.OrderStatusIssued)
	return nil
}
