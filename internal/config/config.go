package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr       string        `env:"LISTEN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	SettingsPath     string        `env:"SETTINGS_PATH" envDefault:"pickupdesk.yaml"`
	APIURL           string        `env:"API_URL" envDefault:""`
	LogDir           string        `env:"LOG_DIR" envDefault:"logs"`
	LogRetention     time.Duration `env:"LOG_RETENTION" envDefault:"168h"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ProbeTimeout     time.Duration `env:"PROBE_TIMEOUT" envDefault:"10s"`
	BreakerThreshold int           `env:"BREAKER_THRESHOLD" envDefault:"5"`
	BreakerTimeout   time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
	ScanCooldown     time.Duration `env:"SCAN_COOLDOWN" envDefault:"1s"`
	KeyGap           time.Duration `env:"KEY_GAP" envDefault:"100ms"`
	StdinScanner     bool          `env:"STDIN_SCANNER" envDefault:"false"`
}

// ServerConfig модель настроек консоли оператора
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
}

// ClientConfig модель настроек работы с сервисом заказов
type ClientConfig struct {
	RequestTimeout   time.Duration
	ProbeTimeout     time.Duration
	BreakerThreshold uint32
	BreakerTimeout   time.Duration
}

// ScannerConfig модель настроек приёма сканирований
type ScannerConfig struct {
	Cooldown time.Duration
	KeyGap   time.Duration
	Stdin    bool
}

// JournalConfig модель настроек журнала диагностики
type JournalConfig struct {
	Dir       string
	Retention time.Duration
}

// SettingsConfig модель настроек хранилища пользовательских настроек
type SettingsConfig struct {
	Path string
	// DefaultAPIURL - адрес API, если пользователь ещё ничего не сохранил
	DefaultAPIURL string
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Client   ClientConfig
	Scanner  ScannerConfig
	Journal  JournalConfig
	Settings SettingsConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Console listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		settings  = pflag.StringP("settings", "s", args.SettingsPath, "Path to settings file.")
		apiURL    = pflag.StringP("api_url", "u", args.APIURL, "Order API base URL used until settings are saved.")
		logDir    = pflag.StringP("log_dir", "o", args.LogDir, "Directory for journal files.")
		retention = pflag.Duration("log_retention", args.LogRetention, "How long journal files are kept.")
		timeout   = pflag.DurationP("timeout", "t", args.RequestTimeout, "Order API request timeout.")
		probe     = pflag.Duration("probe_timeout", args.ProbeTimeout, "Connectivity probe timeout.")
		threshold = pflag.Int("breaker_threshold", args.BreakerThreshold, "Consecutive failures before fail-fast, 0 disables.")
		breaker   = pflag.Duration("breaker_timeout", args.BreakerTimeout, "How long fail-fast lasts.")
		cooldown  = pflag.Duration("scan_cooldown", args.ScanCooldown, "Pause before the next scan is accepted.")
		keyGap    = pflag.Duration("key_gap", args.KeyGap, "Max pause between HID keystrokes of one scan.")
		stdin     = pflag.BoolP("stdin", "i", args.StdinScanner, "Read HID scanner input from stdin.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr: *server,
			LogLevel:   *logLevel,
		},
		Client: ClientConfig{
			RequestTimeout:   *timeout,
			ProbeTimeout:     *probe,
			BreakerThreshold: uint32(max(*threshold, 0)),
			BreakerTimeout:   *breaker,
		},
		Scanner: ScannerConfig{
			Cooldown: *cooldown,
			KeyGap:   *keyGap,
			Stdin:    *stdin,
		},
		Journal: JournalConfig{
			Dir:       *logDir,
			Retention: *retention,
		},
		Settings: SettingsConfig{
			Path:          *settings,
			DefaultAPIURL: *apiURL,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: "localhost:8080",
			LogLevel:   "info",
		},
		Client: ClientConfig{
			RequestTimeout:   30 * time.Second,
			ProbeTimeout:     10 * time.Second,
			BreakerThreshold: 5,
			BreakerTimeout:   30 * time.Second,
		},
		Scanner: ScannerConfig{
			Cooldown: time.Second,
			KeyGap:   100 * time.Millisecond,
		},
		Journal: JournalConfig{
			Dir:       "logs",
			Retention: 7 * 24 * time.Hour,
		},
		Settings: SettingsConfig{
			Path: "pickupdesk.yaml",
		},
	}
}
