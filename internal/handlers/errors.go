package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseError reports a request that could not be turned into a record:
// malformed JSON, a missing or mistyped field, or an invalid date.
type ParseError struct {
	Resource string
	Message  string
	Fields   map[string]string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", strings.ToLower(e.Resource), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// decodeError classifies an encoding/json failure.
func decodeError(resource string, err error) *ParseError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ParseError{
			Resource: resource,
			Message:  "Validation failed",
			Fields:   map[string]string{typeErr.Field: fmt.Sprintf("Field '%s' must be of type %s", typeErr.Field, typeErr.Type)},
			Err:      err,
		}
	}
	return &ParseError{Resource: resource, Message: "Invalid request body", Err: err}
}

// validationError converts validator output into a per-field ParseError.
func validationError(resource string, err error) *ParseError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ParseError{Resource: resource, Message: "Invalid request body", Err: err}
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ParseError{Resource: resource, Message: "Validation failed", Fields: fields, Err: err}
}

// fieldError builds a ParseError for a single field.
func fieldError(resource, field, reason string) *ParseError {
	return &ParseError{
		Resource: resource,
		Message:  "Validation failed",
		Fields:   map[string]string{field: reason},
		Err:      fmt.Errorf("%s: %s", field, reason),
	}
}
