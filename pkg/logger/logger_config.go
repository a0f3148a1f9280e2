package logger

import "github.com/rs/zerolog"

type LoggerConfigJson struct {
	LogLevel *int8 `json:"log_level"`
}

type LoggerConfig struct {
	LogLevel zerolog.Level
}

// ConvertToDomain defaults to info when log_level is absent; zerolog's
// numbering applies otherwise (-1 trace, 0 debug, 1 info, 2 warn, 3 error).
func (lcj LoggerConfigJson) ConvertToDomain() LoggerConfig {
	if lcj.LogLevel == nil {
		return LoggerConfig{LogLevel: zerolog.InfoLevel}
	}
	return LoggerConfig{
		LogLevel: zerolog.Level(*lcj.LogLevel),
	}
}
