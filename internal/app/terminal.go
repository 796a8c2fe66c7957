package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/scanner"
	"github.com/denmor86/ya-pickupdesk/internal/services"
)

// KeyFeeder - приём нажатий поля ввода
type KeyFeeder interface {
	FieldKeys(keys []scanner.Key) (*services.Session, error)
}

// ReadTerminal - стандартный ввод как поле ввода с фокусом: HID-сканер
// печатает код и завершает его Enter. Возвращается по концу ввода или ctx.
func ReadTerminal(ctx context.Context, r io.Reader, feeder KeyFeeder) {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		if ctx.Err() != nil {
			return
		}
		now := time.Now()
		line := lines.Text()
		keys := make([]scanner.Key, 0, len(line)+1)
		for _, ch := range line {
			keys = append(keys, scanner.Key{Rune: ch, At: now})
		}
		keys = append(keys, scanner.Key{Enter: true, At: now})

		session, err := feeder.FieldKeys(keys)
		switch {
		case errors.Is(err, services.ErrScanDropped):
			// повторное сканирование во время обработки
		case err != nil:
			logger.Warn("Terminal scan rejected:", services.Describe(err))
		case session != nil:
			logger.Info("Terminal scan accepted, session:", session.ID())
		}
	}
	if err := lines.Err(); err != nil {
		logger.Error("error read terminal", err)
	}
}
