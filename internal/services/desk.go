package services

import (
	"errors"
	"sync"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/denmor86/ya-pickupdesk/internal/validators"
	"golang.org/x/time/rate"
)

var (
	ErrScanDropped   = errors.New("scan dropped: previous scan is still being handled")
	ErrSessionActive = errors.New("order screen is already open")
	ErrNoSession     = errors.New("no open order screen")
)

// Desk - стойка выдачи: принимает сканирования из всех каналов,
// превращает их в токен и открывает по нему экран заказа.
type Desk struct {
	client   OrderClient
	urls     BaseURLSource
	gate     *scanner.Gate
	keys     *scanner.Keystream
	cooldown time.Duration

	mu      sync.Mutex
	session *Session
	dropped rate.Sometimes

	// async запускает сетевой вызов сессии
	async func(func())
	now   func() time.Time
}

// NewDesk - создание стойки
func NewDesk(client OrderClient, urls BaseURLSource, cooldown time.Duration, keyGap time.Duration) *Desk {
	return &Desk{
		client:   client,
		urls:     urls,
		gate:     scanner.NewGate(),
		keys:     scanner.NewKeystream(keyGap),
		cooldown: cooldown,
		dropped:  rate.Sometimes{First: 1, Interval: 5 * time.Second},
		async:    func(f func()) { go f() },
		now:      time.Now,
	}
}

// GateState - состояние приёма сканирований
func (d *Desk) GateState() scanner.GateState {
	return d.gate.State()
}

// Camera - строка, распознанная камерой
func (d *Desk) Camera(text string) (*Session, error) {
	return d.Handle(scanner.Event{RawText: text, Source: scanner.SourceCamera, At: d.now()})
}

// FieldKeys - нажатия, полученные полем ввода. nil, nil - сканирование ещё не завершено.
func (d *Desk) FieldKeys(keys []scanner.Key) (*Session, error) {
	return d.feed(keys, d.keys.FieldKey)
}

// InterceptKeys - нажатия, перехваченные на уровне экрана
func (d *Desk) InterceptKeys(keys []scanner.Key) (*Session, error) {
	return d.feed(keys, d.keys.InterceptKey)
}

func (d *Desk) feed(keys []scanner.Key, path func(scanner.Key) (scanner.Event, bool)) (*Session, error) {
	var (
		session *Session
		err     error
	)
	for _, key := range keys {
		if key.At.IsZero() {
			key.At = d.now()
		}
		event, ok := path(key)
		if !ok {
			continue
		}
		session, err = d.Handle(event)
	}
	return session, err
}

// Handle - обработка одного сканирования: нормализация, проверка и загрузка заказа.
// Пока затвор закрыт, сканирования отбрасываются.
func (d *Desk) Handle(event scanner.Event) (*Session, error) {
	if !d.gate.TryAcquire() {
		d.dropped.Do(func() {
			logger.Debug("Scan dropped while gate is disarmed, source:", event.Source)
		})
		return nil, ErrScanDropped
	}
	logger.Info("Scan received, source:", event.Source, "length:", len([]rune(event.RawText)))

	candidate, err := scanner.Normalize(event.RawText)
	if err != nil {
		logger.Warn("Scan rejected:", err)
		d.gate.ArmAfter(d.cooldown)
		return nil, err
	}
	result, err := validators.ValidateToken(candidate)
	if err != nil {
		logger.Warn("Token rejected:", err, "token:", models.MaskToken(candidate))
		d.gate.ArmAfter(d.cooldown)
		return nil, err
	}
	if result.Oversized {
		logger.Warnf("Token is longer than %d characters, passing it on", validators.MaxTokenLength)
	}

	d.mu.Lock()
	if d.session != nil {
		d.mu.Unlock()
		return nil, ErrSessionActive
	}
	session := NewSession(result.Token, event.Source, d.client, d.urls)
	session.oversized = result.Oversized
	session.onClose = d.sessionClosed
	d.session = session
	d.mu.Unlock()

	call, err := session.beginLoad()
	if err != nil {
		return session, err
	}
	d.async(func() { _ = call() })
	return session, nil
}

// Session - открытый экран заказа
func (d *Desk) Session() (*Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil, ErrNoSession
	}
	return d.session, nil
}

// Retry - повторная загрузка заказа после ошибки
func (d *Desk) Retry() (*Session, error) {
	session, err := d.Session()
	if err != nil {
		return nil, err
	}
	call, err := session.beginLoad()
	if err != nil {
		return session, err
	}
	d.async(func() { _ = call() })
	return session, nil
}

// Confirm - выдача после подтверждения оператором
func (d *Desk) Confirm() (*Session, error) {
	session, err := d.Session()
	if err != nil {
		return nil, err
	}
	call, err := session.beginIssue()
	if err != nil {
		return session, err
	}
	d.async(func() { _ = call() })
	return session, nil
}

// CloseSession - закрытие экрана заказа. Без открытого экрана ничего не делает.
func (d *Desk) CloseSession() {
	d.mu.Lock()
	session := d.session
	d.mu.Unlock()
	if session != nil {
		session.Close()
	}
}

// sessionClosed - после закрытия экрана затвор открывается с паузой
func (d *Desk) sessionClosed(s *Session) {
	d.mu.Lock()
	if d.session == s {
		d.session = nil
	}
	d.mu.Unlock()
	d.gate.ArmAfter(d.cooldown)
}
