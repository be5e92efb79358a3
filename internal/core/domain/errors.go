package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound is returned when a foreign key in a payload does not resolve.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrInvalidArgument is returned for out-of-range query arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValidation is returned when a payload fails field validation.
	ErrValidation = errors.New("validation error")
)

// ReferenceError names the foreign key that failed to resolve.
type ReferenceError struct {
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}

func NewNotFoundError(entity string, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}
