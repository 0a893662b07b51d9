// Package errors provides the standardized error type used across the intake
// service, plus its mapping onto HTTP statuses and BPMN workflow errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeIntakeValidationFailed ErrorCode = "INTAKE_VALIDATION_FAILED"
	ErrCodeInvalidTransition      ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"

	ErrCodeWebhookUnavailable ErrorCode = "WEBHOOK_UNAVAILABLE"
	ErrCodeWebhookStatus      ErrorCode = "WEBHOOK_STATUS"
	ErrCodeWebhookMalformed   ErrorCode = "WEBHOOK_MALFORMED"

	ErrCodeKitGenerationCancelled ErrorCode = "KIT_GENERATION_CANCELLED"

	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeArchiveWriteFailed ErrorCode = "ARCHIVE_WRITE_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error { return e.cause }

// WithMetadata attaches a key to the error's metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// NewIntakeValidationError reports a rejected form field.
func NewIntakeValidationError(field, message string) *StandardError {
	return newError(ErrCodeIntakeValidationFailed, message, "field: "+field, false, nil).
		WithMetadata("field", field)
}

// NewInvalidTransitionError reports an event that the current wizard screen does not accept.
func NewInvalidTransitionError(event, screen string) *StandardError {
	return newError(ErrCodeInvalidTransition,
		fmt.Sprintf("event %q is not allowed on the %s screen", event, screen),
		"", false, nil)
}

func NewInvalidRequestError(details string) *StandardError {
	return newError(ErrCodeInvalidRequest, "Invalid request", details, false, nil)
}

// NewWebhookUnavailableError wraps a transport failure talking to the webhook.
func NewWebhookUnavailableError(err error) *StandardError {
	return newError(ErrCodeWebhookUnavailable, "Webhook request failed", err.Error(), true, err)
}

// NewWebhookStatusError reports a non-2xx webhook response.
func NewWebhookStatusError(status int) *StandardError {
	return newError(ErrCodeWebhookStatus, "Webhook returned an error status",
		fmt.Sprintf("status: %d", status), status >= 500, nil).
		WithMetadata("status", status)
}

// NewWebhookMalformedError reports a response body that does not carry the expected output.
func NewWebhookMalformedError(details string) *StandardError {
	return newError(ErrCodeWebhookMalformed, "Webhook response is malformed", details, false, nil)
}

func NewKitGenerationCancelledError(err error) *StandardError {
	return newError(ErrCodeKitGenerationCancelled, "Brand kit generation was cancelled", err.Error(), true, err)
}

func NewSessionNotFoundError(sessionID string) *StandardError {
	return newError(ErrCodeSessionNotFound, "Wizard session not found",
		fmt.Sprintf("sessionId: %s", sessionID), false, nil)
}

func NewSessionStoreFailedError(op string, err error) *StandardError {
	return newError(ErrCodeSessionStoreFailed, "Session store operation failed",
		fmt.Sprintf("op: %s, error: %s", op, err.Error()), true, err)
}

func NewArchiveWriteFailedError(err error) *StandardError {
	return newError(ErrCodeArchiveWriteFailed, "Assessment archive write failed", err.Error(), true, err)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false, err)
}

// AsStandard returns err as a *StandardError, wrapping foreign errors as internal ones.
func AsStandard(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// HasCode reports whether err is a StandardError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Code == code
}

// HTTPStatus maps an error code onto the response status used by the API.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeIntakeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeInvalidTransition:
		return http.StatusConflict
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeWebhookUnavailable, ErrCodeWebhookStatus, ErrCodeWebhookMalformed:
		return http.StatusBadGateway
	case ErrCodeSessionStoreFailed:
		return http.StatusServiceUnavailable
	case ErrCodeKitGenerationCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionStoreFailed,
		ErrCodeArchiveWriteFailed:
		return 3

	case ErrCodeWebhookUnavailable,
		ErrCodeKitGenerationCancelled:
		return 1

	default:
		return 0 // Business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "WEBHOOK"):
		return "WEBHOOK"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "ARCHIVE"):
		return "DATABASE"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
