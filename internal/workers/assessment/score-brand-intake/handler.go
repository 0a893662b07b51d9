// internal/workers/assessment/score-brand-intake/handler.go
package scorebrandintake

import (
	"context"
	"encoding/json"

	"brand-intake/internal/assessment"
	"brand-intake/internal/common/errors"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/common/metrics"
	"brand-intake/internal/intake"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-brand-intake"
)

// Assessor runs a headless assessment.
type Assessor interface {
	Assess(ctx context.Context, form intake.IntakeForm) (*assessment.Assessment, error)
}

type Handler struct {
	config       *Config
	assessor     Assessor
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, assessor Assessor, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		assessor:     assessor,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, errors.NewInvalidRequestError("parse input: "+err.Error()))
		return nil
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return nil
	}

	return h.completeJob(ctx, client, job, output)
}

// Execute validates the input and runs the assessment. Webhook failures do
// not fail the job; they produce fallback scores and a synthesized kit.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	a, err := h.assessor.Assess(ctx, input.Form())
	if err != nil {
		return nil, err
	}

	output := &Output{
		AssessmentID: a.ID,
		Scores:       a.Scores,
		ScoreSource:  a.Source,
		Tiers:        a.Scores.Tiers(),
	}
	if a.Kit != nil {
		output.BrandKit = a.Kit.Kit
		output.KitSource = a.Kit.Origin
	}

	h.logger.Info("brand assessed", map[string]interface{}{
		"assessmentId": a.ID,
		"brandName":    input.BrandName,
		"overall":      a.Scores.Overall,
		"scoreSource":  a.Source,
		"kitSource":    output.KitSource,
	})
	return output, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"error": err,
		})
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.logger.Info("job completed", map[string]interface{}{"jobKey": job.Key})
	return nil
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := errors.AsStandard(err).Code
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}
