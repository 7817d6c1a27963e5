package features

import (
	"errors"
	"net/http"
	"strconv"
)

// MissingParameterError reports a required query parameter that was absent.
type MissingParameterError struct{ Name string }

func (e *MissingParameterError) Error() string { return "missing parameter: " + e.Name }

// StatusCode maps the error to 400 Bad Request.
func (e *MissingParameterError) StatusCode() int { return http.StatusBadRequest }

// InvalidNumberError reports a parameter value that is not a finite float.
type InvalidNumberError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return "invalid number for " + e.Name + ": " + strconv.Quote(e.Value)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }

// StatusCode maps the error to 400 Bad Request.
func (e *InvalidNumberError) StatusCode() int { return http.StatusBadRequest }

// IsMissingParameter reports whether err is a missing parameter error.
func IsMissingParameter(err error) bool {
	var e *MissingParameterError
	return errors.As(err, &e)
}

// IsInvalidNumber reports whether err is an invalid number error.
func IsInvalidNumber(err error) bool {
	var e *InvalidNumberError
	return errors.As(err, &e)
}
