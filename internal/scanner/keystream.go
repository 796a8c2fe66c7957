package scanner

import (
	"strings"
	"sync"
	"time"
	"unicode"
)

// DefaultKeyGap - пауза между символами, после которой начинается новое сканирование
const DefaultKeyGap = 100 * time.Millisecond

// Key - одно нажатие клавиши от HID устройства
type Key struct {
	Rune  rune
	Enter bool
	At    time.Time
}

// Keystream - общий поток нажатий HID-сканера. Его питают два адаптера:
// поле ввода с фокусом (FieldKey) и перехват клавиш экрана (InterceptKey).
// Enter сбрасывает оба буфера только у пути, в буфере которого есть данные.
type Keystream struct {
	mu      sync.Mutex
	gap     time.Duration
	field   strings.Builder
	burst   strings.Builder
	lastKey time.Time
}

// NewKeystream - создание потока с заданной паузой между символами
func NewKeystream(gap time.Duration) *Keystream {
	if gap <= 0 {
		gap = DefaultKeyGap
	}
	return &Keystream{gap: gap}
}

// FieldKey - нажатие, полученное полем ввода
func (k *Keystream) FieldKey(key Key) (Event, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !key.Enter {
		if key.Rune != 0 {
			k.field.WriteRune(key.Rune)
		}
		return Event{}, false
	}
	data := strings.TrimSpace(k.field.String())
	if data == "" {
		return Event{}, false
	}
	k.reset()
	return Event{RawText: data, Source: SourceHIDField, At: key.At}, true
}

// InterceptKey - нажатие, перехваченное на уровне экрана
func (k *Keystream) InterceptKey(key Key) (Event, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if key.Enter {
		data := strings.TrimSpace(k.burst.String())
		if data == "" {
			return Event{}, false
		}
		k.reset()
		return Event{RawText: data, Source: SourceHIDIntercept, At: key.At}, true
	}
	if key.Rune == 0 || !unicode.IsPrint(key.Rune) {
		return Event{}, false
	}
	// ручной ввод медленнее сканера: после долгой паузы начинаем заново
	if !k.lastKey.IsZero() && key.At.Sub(k.lastKey) > k.gap {
		k.burst.Reset()
	}
	k.lastKey = key.At
	k.burst.WriteRune(key.Rune)
	return Event{}, false
}

// Pending - текущее содержимое буферов (поле, перехват)
func (k *Keystream) Pending() (string, string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.field.String(), k.burst.String()
}

func (k *Keystream) reset() {
	k.field.Reset()
	k.burst.Reset()
	k.lastKey = time.Time{}
}
