package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_Error(t *testing.T) {
	err := NewWebhookStatusError(503)
	assert.Equal(t, "WEBHOOK_STATUS: Webhook returned an error status (status: 503)", err.Error())
	assert.True(t, err.Retryable)
	assert.Equal(t, 503, err.Metadata["status"])

	assert.False(t, NewWebhookStatusError(404).Retryable)
}

func TestStandardError_UnwrapKeepsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewWebhookUnavailableError(fmt.Errorf("post: %w", cause))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	wrapped := fmt.Errorf("submit: %w", err)
	assert.True(t, HasCode(wrapped, ErrCodeWebhookUnavailable))
	assert.False(t, HasCode(wrapped, ErrCodeWebhookStatus))
}

func TestAsStandard(t *testing.T) {
	assert.Nil(t, AsStandard(nil))

	std := NewSessionNotFoundError("abc")
	assert.Same(t, std, AsStandard(fmt.Errorf("load: %w", std)))

	foreign := AsStandard(stderrors.New("kaboom"))
	require.NotNil(t, foreign)
	assert.Equal(t, ErrCodeInternal, foreign.Code)
	assert.Equal(t, "kaboom", foreign.Details)
}

func TestHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeIntakeValidationFailed: http.StatusUnprocessableEntity,
		ErrCodeInvalidTransition:      http.StatusConflict,
		ErrCodeInvalidRequest:         http.StatusBadRequest,
		ErrCodeSessionNotFound:        http.StatusNotFound,
		ErrCodeWebhookMalformed:       http.StatusBadGateway,
		ErrCodeSessionStoreFailed:     http.StatusServiceUnavailable,
		ErrCodeKitGenerationCancelled: http.StatusRequestTimeout,
		ErrCodeInternal:               http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), string(code))
	}
}

func TestConvertToBPMNError(t *testing.T) {
	t.Run("retryable store failure keeps retries", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewSessionStoreFailedError("save", stderrors.New("conn reset")))
		assert.Equal(t, "SESSION_STORE_FAILED", bpmn.Code)
		assert.Equal(t, 3, bpmn.Retries)
		assert.True(t, bpmn.Retryable)
	})

	t.Run("validation failure is thrown without retries", func(t *testing.T) {
		bpmn := ConvertToBPMNError(NewIntakeValidationError("brandName", "This field is required"))
		assert.Equal(t, "INTAKE_VALIDATION_FAILED", bpmn.Code)
		assert.Equal(t, 0, bpmn.Retries)

		vars := bpmn.ToErrorVariables()
		assert.Equal(t, "INTAKE_VALIDATION_FAILED", vars["errorCode"])
		assert.Equal(t, "This field is required", vars["errorMessage"])
		assert.Equal(t, "INTAKE_VALIDATION_FAILED", vars["originalErrorCode"])
	})
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "WEBHOOK", GetErrorCategory(ErrCodeWebhookMalformed))
	assert.Equal(t, "SESSION", GetErrorCategory(ErrCodeSessionNotFound))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeArchiveWriteFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeIntakeValidationFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidTransition))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestRemainingRetries(t *testing.T) {
	tests := []struct {
		name       string
		jobRetries int32
		budget     int
		want       int32
	}{
		{"fresh job is capped by the budget", 5, 3, 3},
		{"job at the budget still decrements", 3, 3, 2},
		{"job below the budget decrements", 2, 3, 1},
		{"last retry reaches zero", 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remainingRetries(tt.jobRetries, tt.budget))
		})
	}
}
