// internal/workers/assessment/score-brand-intake/config.go
package scorebrandintake

import (
	"time"

	"brand-intake/internal/common/config"
)

type Config struct {
	// Timeout bounds one job, including the webhook call.
	Timeout time.Duration
}

func LoadConfig(wc config.WorkerConfig) *Config {
	timeout := config.GetDuration(wc.Timeout)
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Config{Timeout: timeout}
}
