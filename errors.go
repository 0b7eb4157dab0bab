package wargaming

import (
	"fmt"

	"github.com/antonholmquist/jason"
)

// APIError represents an error reported by the remote API in the response
// envelope. Code and Message come from the server; Field and Value
// identify the offending request parameter when the server names one.
//
// The Wargaming API reuses a small set of codes (402, 404, 407, 504, ...)
// across message patterns such as METHOD_NOT_FOUND, INVALID_%FIELD% and
// %FIELD%_NOT_SPECIFIED, so callers that need to distinguish failure
// classes should inspect both Code and Message.
type APIError struct {
	Code    int
	Message string
	Field   string
	Value   string
}

func (e APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%d %s (field %q)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// MethodNotFound reports whether the server rejected the call because the
// requested method is unknown or disabled.
func (e APIError) MethodNotFound() bool {
	return e.Message == "METHOD_NOT_FOUND" || e.Message == "METHOD_DISABLED"
}

// InvalidApplicationID reports whether the server rejected the
// application id the client was configured with.
func (e APIError) InvalidApplicationID() bool {
	return e.Message == "INVALID_APPLICATION_ID"
}

// RequestLimitExceeded reports whether the server throttled the request.
func (e APIError) RequestLimitExceeded() bool {
	return e.Message == "REQUEST_LIMIT_EXCEEDED"
}

// SourceNotAvailable reports whether the backing data source is
// temporarily down for maintenance.
func (e APIError) SourceNotAvailable() bool {
	return e.Message == "SOURCE_NOT_AVAILABLE"
}

// ValidationError is returned for calls that fail locally, before any
// request is made: unknown games, regions, categories or methods, and
// missing required parameters.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// extractResponse inspects the status field of a response envelope and
// returns either the data payload or the error the envelope carries.
func extractResponse(js *jason.Object) (*jason.Value, error) {
	status, err := js.GetString("status")
	if err != nil {
		return nil, fmt.Errorf("unable to assert status field to type string")
	}

	if status == "error" {
		code, err := js.GetInt64("error", "code")
		if err != nil {
			return nil, fmt.Errorf("unable to assert error code field to type number")
		}
		message, err := js.GetString("error", "message")
		if err != nil {
			return nil, fmt.Errorf("unable to assert error message field to type string")
		}

		apiErr := APIError{Code: int(code), Message: message}
		// field and value are absent or null for errors that are not
		// about a specific parameter.
		if field, err := js.GetString("error", "field"); err == nil {
			apiErr.Field = field
		}
		if value, err := js.GetString("error", "value"); err == nil {
			apiErr.Value = value
		}
		return nil, apiErr
	}

	data, err := js.GetValue("data")
	if err != nil {
		// A few methods respond without a data field. Hand back the
		// whole envelope in that case.
		return &js.Value, nil
	}
	return data, nil
}
