package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a tool failure. Every error that crosses the
// registry boundary carries exactly one of these codes.
type ErrorCode string

const (
	// CodeConfig: missing or invalid credentials at construction time.
	CodeConfig ErrorCode = "CONFIG_ERROR"
	// CodeAuth: the credential was rejected upstream (401-equivalent).
	CodeAuth ErrorCode = "AUTH_ERROR"
	// CodeValidation: malformed input, caught before any network call.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeNotFound: the requested entity or tool does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeAPI: generic upstream failure.
	CodeAPI ErrorCode = "API_ERROR"
	// CodeInit: the service could not establish a working connection.
	CodeInit ErrorCode = "INIT_ERROR"
)

// defaultStatus maps each code to its HTTP-like status when the caller
// does not supply one.
var defaultStatus = map[ErrorCode]int{
	CodeConfig:     http.StatusInternalServerError,
	CodeAuth:       http.StatusUnauthorized,
	CodeValidation: http.StatusBadRequest,
	CodeNotFound:   http.StatusNotFound,
	CodeAPI:        http.StatusInternalServerError,
	CodeInit:       http.StatusInternalServerError,
}

// BcpError is the classified error type used across all BCPs.
type BcpError struct {
	Message    string    `json:"message"`
	Code       ErrorCode `json:"code"`
	HTTPStatus int       `json:"status"`
}

func (e *BcpError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a BcpError with the default status for its code.
func NewError(code ErrorCode, message string) *BcpError {
	return &BcpError{Message: message, Code: code, HTTPStatus: defaultStatus[code]}
}

// NewErrorWithStatus creates a BcpError carrying an explicit upstream status.
func NewErrorWithStatus(code ErrorCode, message string, status int) *BcpError {
	if status == 0 {
		status = defaultStatus[code]
	}
	return &BcpError{Message: message, Code: code, HTTPStatus: status}
}

// WrapError normalizes an arbitrary error into a BcpError. An error that is
// already classified passes through unchanged, preserving the innermost
// classification. Anything else becomes an API_ERROR with status 500 and the
// original message kept for diagnostics.
func WrapError(err error) *BcpError {
	if err == nil {
		return nil
	}
	var be *BcpError
	if errors.As(err, &be) {
		return be
	}
	return NewError(CodeAPI, err.Error())
}

// IsCode reports whether err is a BcpError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var be *BcpError
	return errors.As(err, &be) && be.Code == code
}
