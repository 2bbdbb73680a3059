// Package errors provides the structured error type used across cptui.
// An Error records the operation that failed, a Kind the UI uses to decide
// how to present it, and optional context.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes an error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindValidation
	KindIO
	KindNetwork
	KindServer
	KindConfig
	KindAuth
	KindTask
	KindTimeout
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindValidation:
		return "validation error"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindServer:
		return "server error"
	case KindConfig:
		return "configuration error"
	case KindAuth:
		return "authentication error"
	case KindTask:
		return "task failed"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for cptui.
type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error from its arguments, which may be an Op, a Kind, a
// string (context) or an error (the cause). With no cause, the context
// string becomes the message.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	// Inherit the kind of a wrapped Error when none was given.
	if e.Kind == KindUnknown {
		e.Kind = GetKind(e.Err)
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetKind returns the Kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns err's text with operation names stripped, which is what
// the UI shows inline.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	inner := Message(e.Err)
	if e.Context != "" {
		return e.Context + ": " + inner
	}
	return inner
}

// Validation returns a validation error carrying a user-facing message.
func Validation(op Op, msg string) error {
	return E(op, KindValidation, msg)
}

// HTTPStatus is returned when the server answers with a non-2xx status.
func HTTPStatus(op Op, status int, body string) error {
	if body == "" {
		return E(op, KindNetwork, fmt.Sprintf("server returned status %d", status))
	}
	return E(op, KindNetwork, fmt.Sprintf("server returned status %d", status), errors.New(body))
}

// ServerError is returned when the server rejects a request with a message.
func ServerError(op Op, msg string) error {
	return E(op, KindServer, msg)
}

// ConfigLoadFailed wraps an error reading configuration from path.
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

// ConfigSaveFailed wraps an error writing to path.
func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save %s", path), err)
}

// ConfigInvalid reports a rejected configuration value.
func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// TaskFailed reports a background task that finished in FAILURE.
func TaskFailed(taskID, reason string) error {
	if reason == "" {
		reason = "task " + taskID + " failed"
	}
	return E(Op("api.PollTask"), KindTask, reason)
}

// TaskTimeout reports a task that did not finish in time.
func TaskTimeout(taskID string) error {
	return E(Op("api.PollTask"), KindTimeout, fmt.Sprintf("timed out waiting for task %s", taskID))
}
