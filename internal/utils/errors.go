package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeUpstream        Code = "UPSTREAM"
	CodeStorage         Code = "STORAGE"
	CodeInternal        Code = "INTERNAL"
)

// AppError is the unified error contract across layers.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "ConversationService.Generate"
	Message string // safe message, returned to the client verbatim
	Err     error  // wrapped error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "error"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// HTTPStatus maps the error taxonomy to status codes. Upstream and storage
// failures both surface as 500: the endpoint contract exposes only the
// message, not the layer that failed.
func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Message extracts the client-safe message from an error.
func Message(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return http.StatusText(HTTPStatus(err))
}
