package logger

// Logger is the interface used by the library for all logging. Consumers may provide their
// own implementation via watchask.SetLogger, otherwise all log events are discarded.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
