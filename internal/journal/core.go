package journal

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Core - zapcore.Core, который пишет записи логгера в журнал
type Core struct {
	zapcore.LevelEnabler
	journal *Journal
	fields  []zapcore.Field
}

// NewCore - ядро zap поверх журнала
func NewCore(j *Journal, enabler zapcore.LevelEnabler) zapcore.Core {
	return &Core{LevelEnabler: enabler, journal: j}
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		LevelEnabler: c.LevelEnabler,
		journal:      c.journal,
		fields:       make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var b strings.Builder
	b.WriteString(ent.Message)
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	if ent.Stack != "" {
		b.WriteString("\n")
		b.WriteString(ent.Stack)
	}
	return c.journal.Append(FromZapLevel(ent.Level), b.String())
}

func (c *Core) Sync() error {
	return nil
}

// FromZapLevel - соответствие уровней zap уровням журнала
func FromZapLevel(level zapcore.Level) Level {
	switch {
	case level < zapcore.InfoLevel:
		return LevelDebug
	case level == zapcore.InfoLevel:
		return LevelInfo
	case level == zapcore.WarnLevel:
		return LevelWarning
	default:
		return LevelError
	}
}
