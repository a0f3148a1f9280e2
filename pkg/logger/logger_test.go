package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"investments-api/pkg/logger"
	"investments-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   logger.LoggerConfig
		expected zerolog.Level
	}{
		{
			name:     "Default log level when no level specified",
			config:   logger.LoggerConfig{LogLevel: zerolog.NoLevel},
			expected: zerolog.InfoLevel,
		},
		{
			name:     "Debug log level",
			config:   logger.LoggerConfig{LogLevel: zerolog.DebugLevel},
			expected: zerolog.DebugLevel,
		},
		{
			name:     "Error log level",
			config:   logger.LoggerConfig{LogLevel: zerolog.ErrorLevel},
			expected: zerolog.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.NewFromConfig(tt.config)
			if l.GetLevel() != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, l.GetLevel())
			}
		})
	}
}

func TestLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.ErrorLevel)

	// filtered out
	l.Info("info message")
	l.Error(errors.New("test error"), "error message")

	output := buf.String()
	if strings.Contains(output, "info message") {
		t.Error("Info message should not appear when level is set to Error")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should appear when level is set to Error")
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		msg   string
		level string
	}{
		{"debug", func(l *logger.Logger) { l.Debug("debug message") }, "debug message", "debug"},
		{"debugf", func(l *logger.Logger) { l.Debugf("debug message with %s", "formatting") }, "debug message with formatting", "debug"},
		{"info", func(l *logger.Logger) { l.Info("info message") }, "info message", "info"},
		{"infof", func(l *logger.Logger) { l.Infof("info message with %d items", 5) }, "info message with 5 items", "info"},
		{"warn", func(l *logger.Logger) { l.Warn("warning message") }, "warning message", "warn"},
		{"warnf", func(l *logger.Logger) { l.Warnf("warning message with %s", "details") }, "warning message with details", "warn"},
		{"log", func(l *logger.Logger) { l.Log(zerolog.WarnLevel, "custom level message") }, "custom level message", "warn"},
		{"logf", func(l *logger.Logger) { l.Logf(zerolog.InfoLevel, "custom level message with %d", 42) }, "custom level message with 42", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.New().WithOutput(&buf).WithLevel(zerolog.DebugLevel)

			tt.log(l)

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("Expected output to contain %q, got: %s", tt.msg, output)
			}
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("Expected log level to be %s, got: %s", tt.level, output)
			}
		})
	}
}

func TestLoggerErrorf(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Errorf(errors.New("test error"), "error message with %s", "context")

	output := buf.String()
	if !strings.Contains(output, "error message with context") {
		t.Errorf("Expected formatted output, got: %s", output)
	}
	if !strings.Contains(output, "test error") {
		t.Error("Expected output to contain error details")
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("test json format")

	var logEntry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}
	if logEntry["level"] != "info" {
		t.Error("Expected level field to be 'info'")
	}
	if logEntry["message"] != "test json format" {
		t.Error("Expected message field to match input")
	}
	if _, ok := logEntry["time"]; !ok {
		t.Error("Expected time field to be present")
	}
	if caller, ok := logEntry["caller"].(string); !ok || !strings.Contains(caller, "logger_test.go") {
		t.Errorf("Expected caller to point at the test file, got %v", logEntry["caller"])
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.WithField("request_id", "abc").Info("scoped")

	if !strings.Contains(buf.String(), `"request_id":"abc"`) {
		t.Errorf("Expected request_id field, got: %s", buf.String())
	}
}

func TestLoggerRedactsMessagesAndErrors(t *testing.T) {
	var buf bytes.Buffer
	var sunk []string
	l := logger.New().WithOutput(&buf).WithRedactor(func(s string) string {
		return strings.ReplaceAll(s, "hunter2", "***")
	})
	l.WithSink(func(msg string, _ zerolog.Level, _ timeutil.TimeUTC) {
		sunk = append(sunk, msg)
	})

	l.Errorf(errors.New("auth failed for password hunter2"), "connecting with password=%s", "hunter2")

	output := buf.String()
	if strings.Contains(output, "hunter2") {
		t.Errorf("Expected secret to be masked, got: %s", output)
	}
	if !strings.Contains(output, "password=***") {
		t.Errorf("Expected masked message, got: %s", output)
	}
	if len(sunk) != 1 || strings.Contains(sunk[0], "hunter2") {
		t.Errorf("Expected one masked sink message, got: %v", sunk)
	}
}

func TestLoggerSinkRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	var levels []zerolog.Level
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.WarnLevel)
	l.WithSink(func(_ string, level zerolog.Level, _ timeutil.TimeUTC) {
		levels = append(levels, level)
	})

	l.Info("dropped")
	l.Warn("kept")

	if len(levels) != 1 || levels[0] != zerolog.WarnLevel {
		t.Errorf("Expected only the warn line to reach the sink, got %v", levels)
	}
}

func TestLoggerPanic(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected Panic to panic")
		}
		if !strings.Contains(buf.String(), "boom") {
			t.Errorf("Expected panic message to be logged, got: %s", buf.String())
		}
	}()
	l.Panic(nil, "boom")
}

func TestLoggerConfigConvertToDomain(t *testing.T) {
	debug := int8(zerolog.DebugLevel)
	warn := int8(zerolog.WarnLevel)

	tests := []struct {
		name     string
		config   logger.LoggerConfigJson
		expected zerolog.Level
	}{
		{"Absent level defaults to info", logger.LoggerConfigJson{}, zerolog.InfoLevel},
		{"Debug level conversion", logger.LoggerConfigJson{LogLevel: &debug}, zerolog.DebugLevel},
		{"Warn level conversion", logger.LoggerConfigJson{LogLevel: &warn}, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.ConvertToDomain()
			if result.LogLevel != tt.expected {
				t.Errorf("Expected LogLevel %v, got %v", tt.expected, result.LogLevel)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{
			{Key: "service", Value: "test"},
		},
	})

	if logger.Default() == nil {
		t.Fatal("Expected default logger to exist, got nil")
	}
	// later calls are no-ops
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	if logger.Default() == nil {
		t.Fatal("Expected default logger to survive a second init")
	}
}
