// internal/workers/assessment/score-brand-intake/handler_test.go
package scorebrandintake

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brand-intake/internal/assessment"
	"brand-intake/internal/common/config"
	"brand-intake/internal/common/errors"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/intake"
	"brand-intake/internal/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type mockAssessor struct {
	mock.Mock
}

func (m *mockAssessor) Assess(ctx context.Context, form intake.IntakeForm) (*assessment.Assessment, error) {
	args := m.Called(ctx, form)
	a, _ := args.Get(0).(*assessment.Assessment)
	return a, args.Error(1)
}

func createTestHandler(t *testing.T, assessor Assessor) *Handler {
	return NewHandler(LoadConfig(config.WorkerConfig{Timeout: 5000}), assessor, logger.NewTestLogger(t))
}

func createInput() *Input {
	return &Input{
		BrandName:        "Acme",
		BrandDescription: "We help clinics book patients",
		Industry:         "Healthcare",
		TargetAudience:   "Clinic owners",
		WebsiteLink:      "https://acme.health",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_MapsAssessment(t *testing.T) {
	kit := intake.Remote(intake.BrandKit{Tagline: "Acme - Care first"})
	assessor := &mockAssessor{}
	assessor.On("Assess", mock.Anything, createInput().Form()).Return(&assessment.Assessment{
		ID:     "a-1",
		Scores: intake.ScoreSet{Overall: 85, Awareness: 62, Consistency: 40, Engagement: 12},
		Source: intake.SourceWebhook,
		Kit:    &kit,
	}, nil)

	output, err := createTestHandler(t, assessor).Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, "a-1", output.AssessmentID)
	assert.Equal(t, intake.SourceWebhook, output.ScoreSource)
	assert.Equal(t, intake.KitRemote, output.KitSource)
	assert.Equal(t, "Acme - Care first", output.BrandKit.Tagline)
	assert.Equal(t, map[string]intake.Tier{
		"overall":     intake.TierExcellent,
		"awareness":   intake.TierGood,
		"consistency": intake.TierElevatedConcern,
		"engagement":  intake.TierLow,
	}, output.Tiers)
	assessor.AssertExpectations(t)
}

func TestHandler_Execute_PropagatesValidationError(t *testing.T) {
	assessor := &mockAssessor{}
	assessor.On("Assess", mock.Anything, mock.Anything).
		Return(nil, errors.NewIntakeValidationError("brandName", intake.MsgRequired))

	_, err := createTestHandler(t, assessor).Execute(context.Background(), &Input{})
	assert.True(t, errors.HasCode(err, errors.ErrCodeIntakeValidationFailed))

	bpmn := errors.ConvertToBPMNError(errors.AsStandard(err))
	assert.Equal(t, "INTAKE_VALIDATION_FAILED", bpmn.Code)
	assert.Zero(t, bpmn.Retries)
}

// ==========================
// Integration With Assessment Service
// ==========================

func TestHandler_Execute_FallbackWhenWebhookDown(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer hook.Close()

	log := logger.NewTestLogger(t)
	svc := assessment.NewService(
		webhook.NewClient(config.WebhookConfig{URL: hook.URL, Timeout: 1000}, log),
		assessment.Options{KitDelay: time.Hour},
		log,
	)

	output, err := createTestHandler(t, svc).Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.NotEmpty(t, output.AssessmentID)
	assert.Equal(t, intake.SourceFallback, output.ScoreSource)
	assert.Equal(t, intake.KitSynthesized, output.KitSource)
	assert.Equal(t, "Acme - Wellness Redefined", output.BrandKit.Tagline)
	assert.GreaterOrEqual(t, output.Scores.Awareness, 65)
	assert.LessOrEqual(t, output.Scores.Awareness, 94)
}

func TestLoadConfig_DefaultTimeout(t *testing.T) {
	assert.Equal(t, 90*time.Second, LoadConfig(config.WorkerConfig{}).Timeout)
	assert.Equal(t, 2*time.Second, LoadConfig(config.WorkerConfig{Timeout: 2000}).Timeout)
}
