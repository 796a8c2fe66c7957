package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyURL      = errors.New("API URL is empty")
	ErrInvalidScheme = errors.New("API URL must start with http:// or https://")
)

// Settings - настройки приложения
type Settings struct {
	APIBaseURL string `yaml:"api_url" json:"api_url"`
}

// Store - хранилище настроек
type Store interface {
	Load() (Settings, error)
	Save(s Settings) error
}

// NormalizeURL проверяет адрес API и убирает завершающий слеш
func NormalizeURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrEmptyURL
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", ErrInvalidScheme
	}
	return strings.TrimRight(url, "/"), nil
}

// FileStore - настройки в YAML файле
type FileStore struct {
	mu   sync.Mutex
	path string
}

// Создание хранилища
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load - отсутствие файла не ошибка, возвращаются пустые настройки
func (s *FileStore) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result Settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return result, nil
}

// Save записывает настройки через временный файл
func (s *FileStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Path - путь к файлу настроек
func (s *FileStore) Path() string {
	return s.path
}
