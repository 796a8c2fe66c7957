package journal

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCapacity - сколько записей хранится в памяти
const DefaultCapacity = 1000

// TimeLayout - формат времени записи в файле
const TimeLayout = "2006-01-02 15:04:05.000"

// Level - уровень записи журнала
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// MarshalText - уровень в JSON выводится строкой
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Entry - запись журнала
type Entry struct {
	Time    time.Time `json:"time"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
}

// Line - строка записи для файла
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Time.Format(TimeLayout), e.Level, e.Message)
}

// FileSink - файловое хранилище журнала
type FileSink interface {
	Append(line string) error
	Truncate() error
	Path() string
}

// Journal - журнал диагностики: последние записи в памяти
// и копия каждой записи в файле. Безопасен для конкурентной записи.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	head    int
	size    int
	sink    FileSink
	now     func() time.Time
}

// New - создание журнала. sink может быть nil, тогда журнал живёт только в памяти.
func New(capacity int, sink FileSink) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		entries: make([]Entry, capacity),
		sink:    sink,
		now:     time.Now,
	}
}

// Append добавляет запись, вытесняя самую старую при переполнении
func (j *Journal) Append(level Level, message string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := Entry{Time: j.now(), Level: level, Message: message}
	j.entries[(j.head+j.size)%len(j.entries)] = entry
	if j.size < len(j.entries) {
		j.size++
	} else {
		j.head = (j.head + 1) % len(j.entries)
	}

	if j.sink == nil {
		return nil
	}
	if err := j.sink.Append(entry.Line()); err != nil {
		return fmt.Errorf("failed to write journal file: %w", err)
	}
	return nil
}

// Entries - записи в памяти от старых к новым
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	result := make([]Entry, 0, j.size)
	for i := 0; i < j.size; i++ {
		result = append(result, j.entries[(j.head+i)%len(j.entries)])
	}
	return result
}

// Len - количество записей в памяти
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.size
}

// Clear очищает память и файл
func (j *Journal) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	clear(j.entries)
	j.head = 0
	j.size = 0
	if j.sink == nil {
		return nil
	}
	if err := j.sink.Truncate(); err != nil {
		return fmt.Errorf("failed to truncate journal file: %w", err)
	}
	return nil
}

// Path - путь к текущему файлу журнала, пустой для журнала в памяти
func (j *Journal) Path() string {
	if j.sink == nil {
		return ""
	}
	return j.sink.Path()
}
