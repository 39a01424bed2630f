package emit

import (
	"fmt"
	"io"
	"time"
)

// writerLogger implements the Logger interface using an io.Writer
type writerLogger struct {
	writer io.Writer
	fields map[string]any
}

// NewWriterLogger creates a new Logger that writes formatted lines to the
// provided writer
func NewWriterLogger(writer io.Writer) Logger {
	return &writerLogger{
		writer: writer,
		fields: make(map[string]any),
	}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	next := &writerLogger{
		writer: l.writer,
		fields: make(map[string]any, len(l.fields)+1),
	}
	// Copy existing fields
	for k, v := range l.fields {
		next.fields[k] = v
	}
	next.fields[key] = value
	return next
}

func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	result := " ["
	first := true
	for k, v := range l.fields {
		if !first {
			result += ", "
		}
		result += fmt.Sprintf("%s=%v", k, v)
		first = false
	}
	result += "]"
	return result
}

func (l *writerLogger) log(level, msg string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n", timestamp, level, l.formatFields(), msg)
}

func (l *writerLogger) Debugf(format string, args ...any) {
	l.log("DEBUG", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Errorf(format string, args ...any) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}
