package emit

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger { return noopLogger{} }

func (l noopLogger) WithField(string, any) Logger { return l }

func (l noopLogger) Debugf(string, ...any) {}

func (l noopLogger) Warnf(string, ...any) {}

func (l noopLogger) Errorf(string, ...any) {}
