package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/client"
	"github.com/denmor86/ya-pickupdesk/internal/config"
	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/network/router"
	"github.com/denmor86/ya-pickupdesk/internal/services"
	"github.com/denmor86/ya-pickupdesk/internal/settings"
	"github.com/denmor86/ya-pickupdesk/internal/worker"
)

// Run - запуск консоли оператора. files может быть nil, тогда журнал только в памяти.
func Run(config config.Config, j *journal.Journal, files *journal.DailyFile) {

	orders := client.NewClient(
		client.NewHTTPClient(config.Client.RequestTimeout),
		client.NewBreaker("order-service", config.Client.BreakerThreshold, config.Client.BreakerTimeout),
	)
	manager := services.NewSettingsManager(settings.NewFileStore(config.Settings.Path), orders, config.Settings.DefaultAPIURL, config.Client.ProbeTimeout)
	if err := manager.Load(); err != nil {
		logger.Warn("Settings unavailable, running with empty settings")
	}
	if manager.BaseURL() == "" {
		logger.Warn("API URL is not configured, open settings")
	}
	desk := services.NewDesk(orders, manager, config.Scanner.Cooldown, config.Scanner.KeyGap)

	router := router.NewRouter(desk, manager, j)
	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Создание и запуск воркера очистки журнала
	var cleaner *worker.JournalWorker
	if files != nil {
		cleaner = worker.NewJournalWorker(files, config.Journal.Retention)
		cleaner.Start(ctx)
	} else {
		logger.Warn("Journal file unavailable, logs are kept in memory only")
	}

	if config.Scanner.Stdin {
		go ReadTerminal(ctx, os.Stdin, desk)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting console config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			select {
			case stop <- syscall.SIGTERM:
			default:
			}
		}
	}()

	<-stop
	logger.Info("Shutdown console")
	desk.CloseSession()
	if cleaner != nil {
		cleaner.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Console stopped")
}
