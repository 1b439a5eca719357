package validation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyURL         = errors.New("url is required")
	ErrInvalidURLFormat = errors.New("invalid url format")
	ErrUnsafeProtocol   = errors.New("url protocol not allowed")
	ErrURLTooLong       = errors.New("url exceeds maximum length")
	ErrInvalidSlug      = errors.New("slug can only contain letters, numbers, hyphens, and underscores")
	ErrSlugTooLong      = errors.New("slug must be 50 characters or less")
	ErrInvalidExpiresAt = errors.New("expiresAt must be an ISO-8601 timestamp")
)

type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// RequestError collects every field that failed validation in one request.
type RequestError struct {
	Errors []FieldError
}

func (e *RequestError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}
	return "invalid url data: " + strings.Join(msgs, "; ")
}

// Details maps field names to messages for the error response body.
func (e *RequestError) Details() map[string]string {
	details := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		details[fe.Field] = fe.Err.Error()
	}
	return details
}

func (e *RequestError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, fe := range e.Errors {
		errs = append(errs, fe)
	}
	return errs
}
