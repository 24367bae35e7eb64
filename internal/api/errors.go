package api

import (
	"errors"
	"net/http"

	"github.com/samcharles93/fitskit/pkg/fits"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string {
	return e.msg
}

func (e invalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// contractErrors are builder input errors the caller can fix.
var contractErrors = []error{
	ErrInvalidRequest,
	fits.ErrNotNumeric,
	fits.ErrEmptyArray,
	fits.ErrShape,
	fits.ErrNoColumns,
	fits.ErrColumnLength,
	fits.ErrNonASCII,
	fits.ErrValueTooLong,
}

// statusFor maps an error to the HTTP status and error type reported to clients.
func statusFor(err error) (int, string) {
	for _, target := range contractErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, "invalid_request_error"
		}
	}
	return http.StatusInternalServerError, "server_error"
}
