package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
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

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Entity  string
	Message string
}

func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed or missing input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
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

// InternalError hides an unexpected storage fault behind a fixed message.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return e.Message
}

// Team errors
var (
	ErrTeamNameRequired = &ValidationError{Field: "name", Message: "Team name is required"}
	ErrInvalidTeamID    = &ValidationError{Field: "id", Message: "Invalid team ID"}
	ErrEmptyTeamUpdate  = &ValidationError{Message: "At least one field must be provided for update"}
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Message: "Team with this name already exists"}
)

// Notification errors
var (
	ErrNotificationCreateFailed = &InternalError{Message: "Failed to create notification"}
	ErrNotificationDeleteDenied = &AuthorizationError{Message: "You are not allowed to delete this notification"}
)

// Authentication errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "Authorization header is required"}
	ErrInvalidAuthHeader = &AuthenticationError{Message: "Invalid authorization header format"}
	ErrInvalidToken      = &AuthenticationError{Message: "Invalid token"}
	ErrInsufficientRole  = &AuthorizationError{Message: "Insufficient role for this resource"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
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

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// NewTeamNotFoundError builds the not-found error for a team id
func NewTeamNotFoundError(id int64) error {
	return &NotFoundError{Entity: "team", Message: fmt.Sprintf("Team with ID %d not found", id)}
}

// NewNotificationNotFoundError builds the not-found error for a notification id
func NewNotificationNotFoundError(id uint) error {
	return &NotFoundError{Entity: "notification", Message: fmt.Sprintf("Notification with ID %d not found", id)}
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
