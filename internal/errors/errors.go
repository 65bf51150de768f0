// Package errors provides error types and handling for conduit operations.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a conduit operation error with context about the operation
// and the entity it was acting on. It wraps the underlying error (often an AWS
// SDK error) for better debugging.
type Error struct {
	// Op is the operation that failed (e.g. "portfolio.create", "store.load")
	Op string

	// Entity is the kind of entity involved (e.g. "portfolio", "product")
	Entity string

	// Name is the display name or id of the entity (if applicable)
	Name string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Entity != "" && e.Name != "" {
		return fmt.Sprintf("conduit.%s %s %q: %v", e.Op, e.Entity, e.Name, e.Err)
	}
	if e.Entity != "" {
		return fmt.Sprintf("conduit.%s %s: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("conduit.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithEntity adds entity context to an existing error.
func (e *Error) WithEntity(entity, name string) *Error {
	e.Entity = entity
	e.Name = name
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewEntityError creates a new Error with entity context.
func NewEntityError(op, entity, name string, err error) *Error {
	return &Error{
		Op:     op,
		Entity: entity,
		Name:   name,
		Err:    err,
	}
}

// Sentinel errors for the conduit error taxonomy.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates a required argument was missing or malformed.
	// Raised before any remote call is attempted.
	ErrInvalidInput = errors.New("conduit: invalid input")

	// ErrNotFound indicates an entity was absent from the configuration
	// document or the remote catalog when a lookup required it.
	ErrNotFound = errors.New("conduit: not found")

	// ErrConfigInconsistent indicates the configuration document references an
	// entity that no longer exists remotely, or vice versa.
	ErrConfigInconsistent = errors.New("conduit: configuration inconsistent")

	// ErrRemoteFailure indicates a remote service call itself failed
	// (network, permission, throttling). The underlying cause is wrapped.
	ErrRemoteFailure = errors.New("conduit: remote operation failed")

	// ErrNoAccountAlias indicates the AWS account has no alias configured.
	// An alias is required as the portfolio provider and product owner.
	ErrNoAccountAlias = errors.New("conduit: an account alias needs to be set")
)

// Remote wraps an underlying remote call failure uniformly so callers can
// classify it with IsRemoteFailure while still reaching the SDK cause.
func Remote(op string, err error) *Error {
	return NewError(op, fmt.Errorf("%w: %w", ErrRemoteFailure, err))
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error indicates an entity was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConfigInconsistent checks if an error indicates document/remote drift.
func IsConfigInconsistent(err error) bool {
	return errors.Is(err, ErrConfigInconsistent)
}

// IsRemoteFailure checks if an error indicates a failed remote call.
func IsRemoteFailure(err error) bool {
	return errors.Is(err, ErrRemoteFailure)
}
