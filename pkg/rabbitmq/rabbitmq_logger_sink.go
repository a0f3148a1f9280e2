package rabbitmq

import (
	"fmt"
	"os"

	logger_message "investments-api/pkg/utilities/logger"
	"investments-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

// CreateRabbitmqLoggerSink forwards log lines to the broker. Publish failures
// go to stderr since the logger that owns the sink cannot be used here.
func CreateRabbitmqLoggerSink(publisher IRabbitmqPublisher, service string) func(string, zerolog.Level, timeutil.TimeUTC) {
	return func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC) {
		if err := publisher.Publish(logger_message.NewLoggerMessage(service, level, msg, timestamp)); err != nil {
			fmt.Fprintf(os.Stderr, "rabbitmq log sink: %v\n", err)
		}
	}
}
