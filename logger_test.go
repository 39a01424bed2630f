package emit

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerFormatsFields(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWriterLogger(&buf).WithField("event", "data")
	logger.Debugf("hello %d", 1)

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "event=data")
	assert.Contains(t, out, "hello 1")
}

func TestWriterLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer

	parent := NewWriterLogger(&buf)
	parent.WithField("event", "data")
	parent.Warnf("plain")

	assert.NotContains(t, buf.String(), "event=data")
	assert.Contains(t, buf.String(), "WARN")
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZerologLogger(zerolog.New(&buf)).WithField("event", "data")
	logger.Errorf("boom %s", "now")

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"event":"data"`)
	assert.Contains(t, out, "boom now")
}

func TestNoopLoggerDiscards(t *testing.T) {
	logger := NewNoopLogger().WithField("event", "data")

	logger.Debugf("dropped")
	logger.Warnf("dropped")
	logger.Errorf("dropped")
}
