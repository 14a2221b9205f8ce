package apperr

import (
	"errors"
	"fmt"
)

const (
	// Invalid: client-local form validation failed; never dispatched.
	Invalid Kind = "invalid"
	// Server: the API answered with a non-2xx status.
	Server Kind = "server"
	// Transport: the request never produced a response (DNS, refused, timeout).
	Transport Kind = "transport"
	// Decode: a 2xx response body could not be decoded.
	Decode Kind = "decode"
	// Internal: anything else.
	Internal Kind = "internal"
)

const fallbackMsg = "Something went wrong. Please try again."

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.PublicMsg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.PublicMsg)
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.Err }

// InvalidErr reports a local validation failure. PublicMsg should be short.
func InvalidErr(publicMsg string, fields map[string]string) *AppError {
	return &AppError{Kind: Invalid, PublicMsg: publicMsg, Fields: fields}
}

// ServerErr wraps a non-2xx response. detail is the server-provided message,
// empty when the body carried none.
func ServerErr(status int, detail string) *AppError {
	return &AppError{Kind: Server, Status: status, PublicMsg: detail}
}

func TransportErr(err error) *AppError {
	return &AppError{Kind: Transport, Err: err}
}

func DecodeErr(err error) *AppError {
	return &AppError{Kind: Decode, Err: err}
}

// Wrap: internal error without a public message.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Kind: Internal, PublicMsg: fallbackMsg, Err: err}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Message normalizes any error into the string carried by a _FAIL event:
// the server-provided detail when present, else the transport-level error
// text, else a generic fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if ae, ok := As(err); ok {
		if ae.PublicMsg != "" {
			return ae.PublicMsg
		}
		if ae.Kind == Server && ae.Status != 0 {
			return fmt.Sprintf("Request failed with status code %d", ae.Status)
		}
		if ae.Err != nil {
			return ae.Err.Error()
		}
		return fallbackMsg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMsg
}
