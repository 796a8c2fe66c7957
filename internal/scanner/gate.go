package scanner

import (
	"sync"
	"time"
)

// GateState - состояние затвора сканирования
type GateState int

const (
	Armed GateState = iota
	Disarmed
)

func (s GateState) String() string {
	if s == Armed {
		return "armed"
	}
	return "disarmed"
}

// Gate не даёт начать обработку нового сканирования, пока не завершена
// предыдущая. Это не очередь: сканирования при закрытом затворе теряются.
type Gate struct {
	mu    sync.Mutex
	state GateState
	timer *time.Timer
}

// NewGate - затвор в открытом состоянии
func NewGate() *Gate {
	return &Gate{state: Armed}
}

// TryAcquire закрывает открытый затвор. false - сканирование надо отбросить.
func (g *Gate) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Armed {
		return false
	}
	g.state = Disarmed
	return true
}

// Arm - открыть затвор немедленно
func (g *Gate) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopTimer()
	g.state = Armed
}

// Disarm - закрыть затвор и отменить отложенное открытие
func (g *Gate) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopTimer()
	g.state = Disarmed
}

// ArmAfter - открыть затвор по истечении паузы
func (g *Gate) ArmAfter(d time.Duration) {
	if d <= 0 {
		g.Arm()
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopTimer()
	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		// таймер мог быть заменён или отменён, пока ждали блокировку
		if g.timer != timer {
			return
		}
		g.timer = nil
		g.state = Armed
	})
	g.timer = timer
}

// State - текущее состояние
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) stopTimer() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
