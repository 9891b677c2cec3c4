package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidToken covers every way an upload token can fail to resolve: never
// issued, unknown, or already consumed. The cases are deliberately
// indistinguishable so callers cannot probe which tokens ever existed.
var ErrInvalidToken = errors.New("invalid or expired upload link")

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a referenced entity that does not resolve, either
// because it does not exist or because it is outside the caller's scope.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}

	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// DeliveryError reports a notification that could not be delivered. Offers and
// tokens created before the failing recipient stay committed so a retry reuses
// the same links instead of regenerating them.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver invitation to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func NewDeliveryError(recipient string, err error) *DeliveryError {
	return &DeliveryError{Recipient: recipient, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
