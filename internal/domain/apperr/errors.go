package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the high-level error category used to pick an HTTP status.
type Kind string

const (
	KindValidation         Kind = "validation"          // 400
	KindInvalidCredentials Kind = "invalid_credentials" // 403
	KindInvalidToken       Kind = "invalid_token"       // 403
	KindNotFound           Kind = "not_found"           // 404
	KindConflict           Kind = "conflict"            // 409
	KindDuplicateEmail     Kind = "duplicate_email"     // 500, reported as a creation failure
	KindStore              Kind = "store"               // 500
	KindUnavailable        Kind = "unavailable"         // 503
)

// Error is a typed application error.
// Fields carries field-level validation detail; Cause is the wrapped
// infrastructure error, if any.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error", Fields: fields}
}

// InvalidCredentials is used for both unknown email and wrong password.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "invalid token"}
}

func DuplicateEmail(cause error) *Error {
	return &Error{Kind: KindDuplicateEmail, Message: "email already registered", Cause: cause}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Store(msg string, cause error) *Error {
	return &Error{Kind: KindStore, Message: msg, Cause: cause}
}

func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Message: msg}
}

// KindOf returns the Kind of err. Errors that are not *Error are treated as store failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindInvalidToken:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the client-visible description of a failure. Store errors expose
// their cause's message; everything else exposes its own message.
func Detail(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Kind == KindStore && ae.Cause != nil {
			return ae.Cause.Error()
		}
		return ae.Message
	}
	return err.Error()
}
