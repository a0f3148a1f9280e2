package logger

import "sync"

type LoggerArg struct {
	Key   string
	Value string
}

// GlobalLoggerConfig lists the fields stamped on every line of the process
// logger, typically the service name.
type GlobalLoggerConfig struct {
	Args []LoggerArg
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// InitDefaultLogger builds the process logger. Only the first call has effect.
func InitDefaultLogger(config GlobalLoggerConfig) {
	defaultOnce.Do(func() {
		ctx := New().zl.With()
		for _, arg := range config.Args {
			ctx = ctx.Str(arg.Key, arg.Value)
		}
		defaultLogger = &Logger{zl: ctx.Logger()}
	})
}

// Default returns the process logger, creating a bare one if
// InitDefaultLogger was never called.
func Default() *Logger {
	InitDefaultLogger(GlobalLoggerConfig{})
	return defaultLogger
}
