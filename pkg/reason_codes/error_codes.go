package reasoncodes

import "net/http"

// ErrorKind is the closed set of failure categories reported to API clients.
type ErrorKind string

const (
	Configuration ErrorKind = "Configuration"
	Connectivity  ErrorKind = "Connectivity"
	Timeout       ErrorKind = "Timeout"
	Unknown       ErrorKind = "Unknown"
)

func (k ErrorKind) String() string {
	return string(k)
}

// HTTPStatus maps a kind to the status used by every diagnostics endpoint.
// Downstream dependency failures are 503, everything else is 500.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case Connectivity, Timeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
