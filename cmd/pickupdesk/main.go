package main

import (
	"fmt"
	"os"

	"github.com/denmor86/ya-pickupdesk/internal/app"
	"github.com/denmor86/ya-pickupdesk/internal/config"
	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"github.com/denmor86/ya-pickupdesk/internal/logger"
)

const journalPrefix = "pickup_desk"

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// журнал диагностики, без каталога - только в памяти
	files, fileErr := journal.NewDailyFile(config.Journal.Dir, journalPrefix)
	var j *journal.Journal
	if fileErr != nil {
		fmt.Fprintf(os.Stderr, "journal directory unavailable: %s\n", fileErr)
		files = nil
		j = journal.New(journal.DefaultCapacity, nil)
	} else {
		j = journal.New(journal.DefaultCapacity, files)
	}
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel, j); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	if fileErr != nil {
		logger.Error("Failed to open journal directory:", fileErr)
	}
	app.Run(config, j, files)
}
