package emit

// Logger is the logging surface the emitter writes to. The default is a
// no-op; inject an implementation with WithLogger.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
