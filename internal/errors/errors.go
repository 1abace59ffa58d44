package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a state conflict: a uniqueness violation on
// submit, or a transition attempted on an already-decided application
type ConflictError struct {
	Entity  string
	Context string // Additional context like "for this gig and worker"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError. A target with a
// Context must match it too, so "already applied" and "already decided"
// conflicts on the same entity stay distinguishable.
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	if t.Context != "" && e.Context != t.Context {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrWorkerNotFound             = &NotFoundError{Entity: "worker"}
	ErrStartupNotFound            = &NotFoundError{Entity: "startup"}
	ErrManufacturerNotFound       = &NotFoundError{Entity: "manufacturer"}
	ErrGigNotFound                = &NotFoundError{Entity: "gig"}
	ErrMachineNotFound            = &NotFoundError{Entity: "machine"}
	ErrGigApplicationNotFound     = &NotFoundError{Entity: "gig application"}
	ErrMachineApplicationNotFound = &NotFoundError{Entity: "machine application"}
)

// Conflict Errors
var (
	ErrAlreadyAppliedToGig       = &ConflictError{Entity: "gig application", Context: "already applied"}
	ErrAlreadyAppliedToMachine   = &ConflictError{Entity: "machine application", Context: "already applied"}
	ErrGigApplicationDecided     = &ConflictError{Entity: "gig application", Context: "already decided"}
	ErrMachineApplicationDecided = &ConflictError{Entity: "machine application", Context: "already decided"}
	ErrGigClosed                 = &ConflictError{Entity: "gig", Context: "closed for applications"}
	ErrMachineUnavailable        = &ConflictError{Entity: "machine", Context: "not available for applications"}
	ErrEmailExists               = &ConflictError{Entity: "account", Context: "email already registered"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrRoleNotEligible    = &AuthenticationError{Message: "role is not eligible for this target"}
)

// Authorization Errors
var (
	ErrNotGigOwner     = &AuthorizationError{Message: "gig belongs to another startup"}
	ErrNotMachineOwner = &AuthorizationError{Message: "machine belongs to another manufacturer"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
