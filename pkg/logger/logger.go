package logger

import (
	"context"
	"io"
	"os"
	"time"

	"investments-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

type Logger struct {
	zl     zerolog.Logger
	sink   Sink
	redact func(string) string
}

func New() *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl: logger}
}

func NewFromConfig(cfg LoggerConfig) *Logger {
	if cfg.LogLevel == zerolog.NoLevel {
		cfg.LogLevel = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(cfg.LogLevel)

	return &Logger{zl: logger}
}

func (l *Logger) WithOutput(w io.Writer) *Logger {
	l.zl = l.zl.Output(w)
	return l
}

func (l *Logger) WithLevel(level zerolog.Level) *Logger {
	l.zl = l.zl.Level(level)
	return l
}

// WithRedactor installs a function applied to every message and error text
// before it is written or forwarded to the sink.
func (l *Logger) WithRedactor(redact func(string) string) *Logger {
	l.redact = redact
	return l
}

func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{zl: l.zl.With().Logger(), sink: l.sink, redact: l.redact}
}

func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// WithField returns a child logger carrying the key/value pair on every line.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, l.clean(value)).Logger(), sink: l.sink, redact: l.redact}
}

func (l *Logger) GetLevel() zerolog.Level {
	return l.zl.GetLevel()
}

func (l *Logger) Debug(msg string) {
	l.write(zerolog.DebugLevel, nil, msg)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(zerolog.DebugLevel, nil, formatMessage(format, v...))
}

func (l *Logger) Info(msg string) {
	l.write(zerolog.InfoLevel, nil, msg)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.write(zerolog.InfoLevel, nil, formatMessage(format, v...))
}

func (l *Logger) Warn(msg string) {
	l.write(zerolog.WarnLevel, nil, msg)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(zerolog.WarnLevel, nil, formatMessage(format, v...))
}

func (l *Logger) Error(err error, msg string) {
	l.write(zerolog.ErrorLevel, err, msg)
}

func (l *Logger) Errorf(err error, format string, v ...interface{}) {
	l.write(zerolog.ErrorLevel, err, formatMessage(format, v...))
}

func (l *Logger) Fatal(err error, msg string) {
	l.write(zerolog.FatalLevel, err, msg)
}

func (l *Logger) Fatalf(err error, format string, v ...interface{}) {
	l.write(zerolog.FatalLevel, err, formatMessage(format, v...))
}

func (l *Logger) Panic(err error, msg string) {
	l.write(zerolog.PanicLevel, err, msg)
}

func (l *Logger) Panicf(err error, format string, v ...interface{}) {
	l.write(zerolog.PanicLevel, err, formatMessage(format, v...))
}

func (l *Logger) Log(level zerolog.Level, msg string) {
	l.write(level, nil, msg)
}

func (l *Logger) Logf(level zerolog.Level, format string, v ...interface{}) {
	l.write(level, nil, formatMessage(format, v...))
}

// write sinks before emitting so fatal and panic lines still reach the sink.
func (l *Logger) write(level zerolog.Level, err error, msg string) {
	msg = l.clean(msg)
	if level >= l.zl.GetLevel() {
		l.activateSink(msg, level, timeutil.NowUTC())
	}

	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Str(zerolog.ErrorFieldName, l.clean(err.Error()))
	}
	event.CallerSkipFrame(2).Msg(msg)

	switch level {
	case zerolog.FatalLevel:
		os.Exit(1)
	case zerolog.PanicLevel:
		panic(msg)
	}
}

func (l *Logger) clean(s string) string {
	if l.redact == nil {
		return s
	}
	return l.redact(s)
}
