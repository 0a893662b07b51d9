// internal/assessment/service.go
package assessment

import (
	"context"
	"time"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/common/metrics"
	"brand-intake/internal/common/observability"
	"brand-intake/internal/intake"
	"brand-intake/internal/webhook"

	"github.com/google/uuid"
)

// Submitter posts a form to the scoring webhook.
type Submitter interface {
	Submit(ctx context.Context, form intake.IntakeForm) (*webhook.Result, error)
}

// Archiver stores completed assessments.
type Archiver interface {
	Save(ctx context.Context, a Assessment) error
}

type Options struct {
	// KitDelay is how long local kit synthesis waits before returning.
	KitDelay      time.Duration
	Rand          intake.IntSource
	Archive       Archiver
	Observability *observability.Observability
	Now           func() time.Time
}

// Service runs submissions and kit generation for the wizard and the worker.
type Service struct {
	webhook  Submitter
	kitDelay time.Duration
	rand     intake.IntSource
	archive  Archiver
	obs      *observability.Observability
	now      func() time.Time
	logger   logger.Logger
}

func NewService(submitter Submitter, opts Options, log logger.Logger) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Observability == nil {
		opts.Observability = observability.Noop()
	}
	return &Service{
		webhook:  submitter,
		kitDelay: opts.KitDelay,
		rand:     opts.Rand,
		archive:  opts.Archive,
		obs:      opts.Observability,
		now:      opts.Now,
		logger:   log.WithFields(map[string]interface{}{"component": "assessment"}),
	}
}

// Score implements intake.Scorer.
func (s *Service) Score(ctx context.Context, form intake.IntakeForm) intake.Outcome {
	a := s.submit(ctx, form)
	s.save(ctx, a)
	return a.Outcome()
}

// Assess validates the form and runs a full assessment without the
// interactive delay. A kit is always present in the result.
func (s *Service) Assess(ctx context.Context, form intake.IntakeForm) (*Assessment, error) {
	if err := intake.ValidateForm(form); err != nil {
		return nil, err
	}

	a := s.submit(ctx, form)
	if a.Kit == nil {
		kit := intake.Synthesized(intake.SynthesizeKit(form))
		a.Kit = &kit
		metrics.KitsGenerated.WithLabelValues(string(intake.KitSynthesized)).Inc()
	} else {
		metrics.KitsGenerated.WithLabelValues(string(intake.KitRemote)).Inc()
	}
	s.save(ctx, a)
	return &a, nil
}

func (s *Service) submit(ctx context.Context, form intake.IntakeForm) Assessment {
	a := Assessment{
		ID:        uuid.NewString(),
		Form:      form,
		CreatedAt: s.now().UTC(),
	}

	start := time.Now()
	result, err := s.webhook.Submit(ctx, form)
	elapsed := time.Since(start)

	if err == nil {
		kit := intake.Remote(result.Kit)
		a.Scores = result.Scores
		a.Source = intake.SourceWebhook
		a.Kit = &kit
		s.observeWebhook(ctx, elapsed, "success")
	} else {
		code := errors.AsStandard(err).Code
		s.logger.Warn("webhook failed, using fallback scores", map[string]interface{}{
			"assessmentId": a.ID,
			"errorCode":    code,
			"error":        err,
		})
		metrics.WebhookFailuresTotal.WithLabelValues(string(code)).Inc()
		s.observeWebhook(ctx, elapsed, "failure")

		a.Scores = intake.FallbackScores(s.rand)
		a.Source = intake.SourceFallback
	}

	metrics.SubmissionsTotal.WithLabelValues(string(a.Source)).Inc()
	s.obs.RecordAssessment(ctx, string(a.Source))

	s.logger.Info("assessment scored", map[string]interface{}{
		"assessmentId": a.ID,
		"brandName":    form.BrandName,
		"source":       a.Source,
		"overall":      a.Scores.Overall,
	})

	return a
}

func (s *Service) observeWebhook(ctx context.Context, elapsed time.Duration, outcome string) {
	metrics.WebhookDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	s.obs.RecordWebhookLatency(ctx, elapsed, outcome)
}

// save writes to the archive when one is configured. Failures are logged only.
func (s *Service) save(ctx context.Context, a Assessment) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Save(ctx, a); err != nil {
		s.logger.Warn("archive write failed", map[string]interface{}{
			"assessmentId": a.ID,
			"error":        errors.NewArchiveWriteFailedError(err),
		})
	}
}

// GenerateKit implements intake.KitGenerator. It waits KitDelay and then
// synthesizes a kit from the form.
func (s *Service) GenerateKit(ctx context.Context, form intake.IntakeForm) (intake.BrandKit, error) {
	if s.kitDelay > 0 {
		timer := time.NewTimer(s.kitDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return intake.BrandKit{}, errors.NewKitGenerationCancelledError(ctx.Err())
		}
	}

	metrics.KitsGenerated.WithLabelValues(string(intake.KitSynthesized)).Inc()
	return intake.SynthesizeKit(form), nil
}

// Track records wizard transitions in the transition counter. Remote kits are
// counted when the wizard reaches the Kit screen with one.
func (s *Service) Track(w *intake.Wizard) {
	w.OnTransition(func(ev intake.Event, state intake.State) {
		metrics.WizardTransitions.WithLabelValues(string(ev), state.Step().Title()).Inc()
		if view, ok := state.(intake.KitView); ok && ev == intake.EventRequestKit && view.Kit.IsRemote() {
			metrics.KitsGenerated.WithLabelValues(string(intake.KitRemote)).Inc()
		}
	})
}
