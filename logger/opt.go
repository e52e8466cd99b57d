package logger

import "log"

// A LoggerOptFn is a functional option configuring a StoreLogger when constructing a new one.
type LoggerOptFn func(*StoreLogger)

// WithEnv sets the environment StoreLogger is operating in.
func WithEnv(env string) func(*StoreLogger) {
	return func(l *StoreLogger) {
		l.env = env
	}
}

// WithLevel sets the log level StoreLogger uses.
func WithLevel(level LogLevel) func(*StoreLogger) {
	return func(l *StoreLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger StoreLogger uses.
func WithLogger(log *log.Logger) func(*StoreLogger) {
	return func(l *StoreLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*StoreLogger) {
	return func(l *StoreLogger) {
		l.skip = skip
	}
}
