package errs

import (
	"errors"
	"net/http"
)

var Forbidden = &ApiErr{StatusCode: http.StatusForbidden, err: ErrForbidden}

// Session token errors
var (
	ErrExpiredToken = errors.New("expired session token")
	ErrInvalidToken = errors.New("invalid session token")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
		Details:    "Session has expired",
		Field:      "session",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid session token",
		Field:      "session",
	}
}
