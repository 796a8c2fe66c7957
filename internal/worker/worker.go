package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
)

// Pruner - удаление устаревших файлов журнала
type Pruner interface {
	Prune(maxAge time.Duration) ([]string, error)
}

// JournalWorker - фоновая очистка старых файлов журнала
type JournalWorker struct {
	Pruner       Pruner
	Retention    time.Duration
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewJournalWorker - конструктор обработчика очистки журнала
func NewJournalWorker(pruner Pruner, retention time.Duration) *JournalWorker {
	return &JournalWorker{
		Pruner:       pruner,
		Retention:    retention,
		QuitChan:     make(chan struct{}),
		PollInterval: time.Hour,
	}
}

// Start - очищает журнал сразу и запускает воркер в фоне
func (w *JournalWorker) Start(ctx context.Context) {
	w.ProcessPrune()
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *JournalWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *JournalWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("JournalWorker signal stop")
			return
		case <-ctx.Done():
			logger.Info("JournalWorker context done")
			return
		case <-ticker.C:
			w.ProcessPrune()
		}
	}
}

// ProcessPrune - удаление файлов старше срока хранения
func (w *JournalWorker) ProcessPrune() {
	removed, err := w.Pruner.Prune(w.Retention)
	if err != nil {
		logger.Error("error prune journal files", err)
	}
	for _, name := range removed {
		logger.Info("Old journal file removed:", name)
	}
}
