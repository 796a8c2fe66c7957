package logger

import (
	"github.com/denmor86/ya-pickupdesk/internal/journal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var instance *zap.SugaredLogger = nil

// Initialize - инициализирует синглтон логера с необходимым уровнем логирования.
// Если передан журнал, все записи дублируются в него.
func Initialize(level string, j *journal.Journal) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	// создаём новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаем уровень
	cfg.Level = lvl
	var opts []zap.Option
	if j != nil {
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, journal.NewCore(j, lvl))
		}))
	}
	// создаём логер на основе конфигурации
	logger, err := cfg.Build(opts...)
	if err != nil {
		return err
	}
	// устанавливаем синглтон
	instance = logger.Sugar()
	return nil
}

// Get - метод получения объекта логгера из синглтона
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - метод синхронизации буфферов
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug — обертка над методом логирования уровня Debug
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info — обертка над методом логирования уровня Info
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn — обертка над методом логирования уровня Warn
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error — обертка над методом логирования уровня Error
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Debugf — форматированный Debug
func Debugf(template string, args ...interface{}) {
	Get().Debugf(template, args...)
}

// Infof — форматированный Info
func Infof(template string, args ...interface{}) {
	Get().Infof(template, args...)
}

// Warnf — форматированный Warn
func Warnf(template string, args ...interface{}) {
	Get().Warnf(template, args...)
}

// Errorf — форматированный Error
func Errorf(template string, args ...interface{}) {
	Get().Errorf(template, args...)
}

// Panic — обертка над методом логирования уровня Panic
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
