package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Blog domain errors. Every failure mode a request can hit maps onto one of
// these sentinels so that callers can branch with errors.Is instead of
// matching message text.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrDuplicateTitle     = errors.New("post title is already taken")
	ErrUnknownEmail       = errors.New("no account with that email")
	ErrInvalidCredential  = errors.New("password is incorrect")
	ErrEmptyText          = errors.New("comment text is empty")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrDeliveryFailed     = errors.New("message could not be delivered")
)

func NewDuplicateEmailError(email string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateEmail,
		Details:    fmt.Sprintf("An account with email %q already exists", email),
		Field:      "email",
	}
}

func NewDuplicateTitleError(title string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateTitle,
		Details:    fmt.Sprintf("A post titled %q already exists", title),
		Field:      "title",
	}
}

func NewUnknownEmailError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnknownEmail,
		Field:      "email",
	}
}

func NewInvalidCredentialError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredential,
		Field:      "password",
	}
}

func NewEmptyTextError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrEmptyText,
		Field:      "text",
	}
}

func NewInvalidPhoneNumberError(phone string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidPhoneNumber,
		Details:    fmt.Sprintf("%q may only contain decimal digits and '+'", phone),
		Field:      "phone",
	}
}

func NewDeliveryFailedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrDeliveryFailed,
		Cause:      cause,
	}
}

func IsDuplicateEmail(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

func IsDuplicateTitle(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}

func IsDeliveryFailed(err error) bool {
	return errors.Is(err, ErrDeliveryFailed)
}
