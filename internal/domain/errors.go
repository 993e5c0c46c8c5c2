package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSortField is returned by repositories for sort fields they cannot order by.
var ErrInvalidSortField = errors.New("invalid sort field")

// NotFoundError reports a missing Category, Product or Cart.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func NewNotFoundError(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// APIError is a business rule violation carrying a message meant for the client.
type APIError struct {
	Message string
}

func NewAPIError(format string, args ...any) *APIError {
	return &APIError{Message: fmt.Sprintf(format, args...)}
}

func (e *APIError) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// ErrImageStorage wraps failures writing an uploaded image.
var ErrImageStorage = errors.New("image storage failure")
