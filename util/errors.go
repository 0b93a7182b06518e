package util

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
	KindInternal
)

// AppError is the error type handed from services to controllers. Message is
// what the client sees; Err keeps the underlying cause for logging.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func ConflictError(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

func AuthError(msg string) error {
	return &AppError{Kind: KindAuth, Message: msg}
}

func ForbiddenError(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// InternalError hides err behind the generic server message.
func InternalError(err error) error {
	return &AppError{Kind: KindInternal, Message: SERVER_ERROR, Err: err}
}

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
