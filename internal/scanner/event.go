package scanner

import "time"

// Source - канал, из которого пришло сканирование
type Source int

const (
	SourceCamera Source = iota
	// SourceHIDField - HID-сканер через поле ввода с фокусом
	SourceHIDField
	// SourceHIDIntercept - HID-сканер через перехват нажатий клавиш
	SourceHIDIntercept
)

func (s Source) String() string {
	switch s {
	case SourceCamera:
		return "camera"
	case SourceHIDField:
		return "hid_field"
	case SourceHIDIntercept:
		return "hid_intercept"
	default:
		return "unknown"
	}
}

// Event - одно сканирование. Обрабатывается один раз.
type Event struct {
	RawText string
	Source  Source
	At      time.Time
}
