package logger

import (
	"fmt"

	"investments-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

// Sink receives every line at or above the logger level, after redaction.
// It must not log through the same Logger.
type Sink func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC)

func (l *Logger) WithSink(sink Sink) *Logger {
	l.sink = sink
	return l
}

func formatMessage(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}

func (l *Logger) activateSink(msg string, level zerolog.Level, timestamp timeutil.TimeUTC) {
	if l.sink != nil {
		l.sink(msg, level, timestamp)
	}
}
