package logger_message

import (
	"investments-api/pkg/utilities"
	"investments-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

// LoggerMessage is the body published for every log line forwarded to Rabbitmq.
type LoggerMessage struct {
	Service   string           `json:"service"`
	Level     string           `json:"level"`
	Message   string           `json:"message"`
	Timestamp timeutil.TimeUTC `json:"timestamp"`
}

func NewLoggerMessage(service string, level zerolog.Level, msg string, timestamp timeutil.TimeUTC) LoggerMessage {
	return LoggerMessage{
		Service:   service,
		Level:     level.String(),
		Message:   msg,
		Timestamp: timestamp,
	}
}

func (lm LoggerMessage) Serialize() ([]byte, error) {
	return utilities.Serialize(lm)
}
