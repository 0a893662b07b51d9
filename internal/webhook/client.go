// internal/webhook/client.go
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"brand-intake/internal/common/config"
	"brand-intake/internal/common/errors"
	commonhttp "brand-intake/internal/common/http"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/intake"
)

const maxResponseBytes = 1 << 20

// Client posts intake forms to the scoring webhook.
type Client struct {
	url    string
	http   *commonhttp.Client
	logger logger.Logger
}

func NewClient(cfg config.WebhookConfig, log logger.Logger) *Client {
	return &Client{
		url:    cfg.URL,
		http:   commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		logger: log.WithFields(map[string]interface{}{"component": "webhook"}),
	}
}

// Submit sends the form once. No retry is attempted: every failure is
// returned as a *errors.StandardError for the caller to fall back on.
func (c *Client) Submit(ctx context.Context, form intake.IntakeForm) (*Result, error) {
	start := time.Now()
	payload := NewPayload(form)

	c.logger.Debug("sending webhook payload", map[string]interface{}{
		"brandName": form.BrandName,
		"industry":  form.Industry,
	})

	resp, err := c.http.PostJSON(ctx, c.url, payload)
	if err != nil {
		return nil, errors.NewWebhookUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, errors.NewWebhookStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewWebhookUnavailableError(fmt.Errorf("read response: %w", err))
	}

	result, err := ParseResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("webhook scored brand", map[string]interface{}{
		"brandName": form.BrandName,
		"overall":   result.Scores.Overall,
		"duration":  time.Since(start).String(),
	})
	return result, nil
}
