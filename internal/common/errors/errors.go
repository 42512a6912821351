// Package errors provides standardized error handling for the notification
// dispatch pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigInvalid            ErrorCode = "CONFIG_INVALID"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"

	ErrCodeNotificationFetchFailed ErrorCode = "NOTIFICATION_FETCH_FAILED"
	ErrCodeReminderFetchFailed     ErrorCode = "REMINDER_FETCH_FAILED"

	ErrCodeTemplateRenderFailed ErrorCode = "TEMPLATE_RENDER_FAILED"
	ErrCodeEmailSendFailed      ErrorCode = "EMAIL_SEND_FAILED"
	ErrCodeOutcomeWriteFailed   ErrorCode = "OUTCOME_WRITE_FAILED"
	ErrCodeAuditWriteFailed     ErrorCode = "AUDIT_WRITE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigInvalidError creates a fatal configuration error.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid or missing configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFetchFailedError creates the run-fatal fetch error. The run
// aborts before any sends when the pending-notification query fails.
func NewNotificationFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFetchFailed,
		Message:   "Failed to fetch pending notifications",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReminderFetchFailedError creates the run-fatal reminder query error.
func NewReminderFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReminderFetchFailed,
		Message:   "Failed to fetch events needing reminders",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateRenderFailedError creates a per-item, non-retryable render error.
func NewTemplateRenderFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateRenderFailed,
		Message:   "Email template rendering failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a per-item send error. Failed items are
// marked failed and are not retried by this pipeline.
func NewEmailSendFailedError(recipient string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Email delivery failed",
		Details:   fmt.Sprintf("recipient: %s, error: %s", recipient, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutcomeWriteFailedError creates the mark-sent/mark-failed write error.
// Logged only; the item's success flag is not changed when the outcome write
// fails, so the store may briefly disagree with what was sent.
func NewOutcomeWriteFailedError(notificationID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutcomeWriteFailed,
		Message:   "Failed to record notification outcome",
		Details:   fmt.Sprintf("notificationId: %s, error: %s", notificationID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditWriteFailedError creates the write-only audit trail error.
func NewAuditWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditWriteFailed,
		Message:   "Failed to record audit row",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
