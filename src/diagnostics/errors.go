package diagnostics

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	reasoncodes "investments-api/pkg/reason_codes"

	"github.com/jackc/pgx/v5/pgconn"
)

// Classify maps a failure to the closed error kind reported to clients.
func Classify(err error) reasoncodes.ErrorKind {
	if err == nil {
		return ""
	}

	var parseErr *pgconn.ParseConfigError
	if errors.As(err, &parseErr) {
		return reasoncodes.Configuration
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return reasoncodes.Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return reasoncodes.Timeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "28"), // invalid authorization
			strings.HasPrefix(pgErr.Code, "08"), // connection exception
			strings.HasPrefix(pgErr.Code, "3D"), // invalid catalog name
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57P"):
			return reasoncodes.Connectivity
		default:
			return reasoncodes.Unknown
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return reasoncodes.Connectivity
	}

	return reasoncodes.Unknown
}

// Failure is the structured body returned when a diagnostics run fails.
type Failure struct {
	Status      string                `json:"status"`
	Message     string                `json:"message"`
	Kind        reasoncodes.ErrorKind `json:"kind"`
	Timestamp   time.Time             `json:"timestamp"`
	Suggestions []string              `json:"suggestions,omitempty"`
}

func (f *Failure) Error() string {
	return string(f.Kind) + ": " + f.Message
}

func (f *Failure) HTTPStatus() int {
	return f.Kind.HTTPStatus()
}
