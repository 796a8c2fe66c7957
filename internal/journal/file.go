package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultRetention - сколько хранятся файлы журнала
const DefaultRetention = 7 * 24 * time.Hour

const fileExt = ".log"

// DailyFile - файлы журнала по дням: <dir>/<prefix>_YYYY-MM-DD.log
type DailyFile struct {
	mu     sync.Mutex
	dir    string
	prefix string
	now    func() time.Time
}

// NewDailyFile создаёт каталог журнала, если его нет
func NewDailyFile(dir string, prefix string) (*DailyFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	return &DailyFile{dir: dir, prefix: prefix, now: time.Now}, nil
}

// Path - файл за текущий день
func (f *DailyFile) Path() string {
	return filepath.Join(f.dir, f.prefix+"_"+f.now().Format("2006-01-02")+fileExt)
}

// Append дописывает строку в конец файла
func (f *DailyFile) Append(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(line + "\n"); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Truncate очищает файл текущего дня и удаляет файлы прошлых дней
func (f *DailyFile) Truncate() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return fmt.Errorf("failed to read log dir: %w", err)
	}
	current := filepath.Base(f.Path())
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == current || !f.owns(name) {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil {
			return fmt.Errorf("failed to remove log %s: %w", name, err)
		}
	}
	return os.WriteFile(f.Path(), nil, 0o644)
}

func (f *DailyFile) owns(name string) bool {
	return strings.HasPrefix(name, f.prefix+"_") && strings.HasSuffix(name, fileExt)
}

// Prune удаляет файлы журнала, изменённые раньше чем maxAge назад
func (f *DailyFile) Prune(maxAge time.Duration) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read log dir: %w", err)
	}
	cutoff := f.now().Add(-maxAge)
	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !f.owns(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(f.dir, name)); err != nil {
				return removed, fmt.Errorf("failed to remove old log %s: %w", name, err)
			}
			removed = append(removed, name)
		}
	}
	return removed, nil
}
