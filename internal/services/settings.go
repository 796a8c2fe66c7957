package services

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/settings"
)

// SettingsManager - текущие настройки и их сохранение
type SettingsManager struct {
	store        settings.Store
	client       OrderClient
	defaultURL   string
	probeTimeout time.Duration

	mu       sync.RWMutex
	current  settings.Settings
	degraded bool
}

// NewSettingsManager - defaultURL используется, пока пользователь ничего не сохранил
func NewSettingsManager(store settings.Store, client OrderClient, defaultURL string, probeTimeout time.Duration) *SettingsManager {
	return &SettingsManager{
		store:        store,
		client:       client,
		defaultURL:   defaultURL,
		probeTimeout: probeTimeout,
	}
}

// Load - чтение настроек. При ошибке работа продолжается с пустыми настройками.
func (m *SettingsManager) Load() error {
	loaded, err := m.store.Load()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.degraded = err != nil
	if err != nil {
		logger.Error("Failed to load settings, continuing without them:", err)
		loaded = settings.Settings{}
	}
	if loaded.APIBaseURL == "" && m.defaultURL != "" {
		if url, err := settings.NormalizeURL(m.defaultURL); err == nil {
			loaded.APIBaseURL = url
			logger.Info("Using default API URL:", url)
		} else {
			logger.Warn("Default API URL ignored:", err)
		}
	}
	m.current = loaded
	return err
}

// Current - текущие настройки
func (m *SettingsManager) Current() settings.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Degraded - настройки не удалось прочитать при запуске
func (m *SettingsManager) Degraded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.degraded
}

// BaseURL - адрес API для очередного запроса
func (m *SettingsManager) BaseURL() string {
	return m.Current().APIBaseURL
}

// Save - проверка и сохранение адреса API
func (m *SettingsManager) Save(rawURL string) (settings.Settings, error) {
	url, err := settings.NormalizeURL(rawURL)
	if err != nil {
		return settings.Settings{}, err
	}
	updated := settings.Settings{APIBaseURL: url}
	if err := m.store.Save(updated); err != nil {
		logger.Error("Failed to save settings:", err)
		return settings.Settings{}, err
	}

	m.mu.Lock()
	m.current = updated
	m.degraded = false
	m.mu.Unlock()

	logger.Info("API URL saved:", url)
	return updated, nil
}

// Probe - проверка соединения. Пустой адрес - проверяется сохранённый.
func (m *SettingsManager) Probe(ctx context.Context, rawURL string) (int, error) {
	if rawURL == "" {
		rawURL = m.BaseURL()
		if rawURL == "" {
			return 0, ErrNotConfigured
		}
	}
	url, err := settings.NormalizeURL(rawURL)
	if err != nil {
		return 0, err
	}
	if m.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.probeTimeout)
		defer cancel()
	}
	logger.Info("Testing connection:", url)
	status, err := m.client.Probe(ctx, url)
	if err != nil {
		logger.Warn("Connection test failed:", err)
		return status, err
	}
	logger.Info("Connection test passed, status:", status)
	return status, nil
}
