// internal/assessment/models.go
package assessment

import (
	"time"

	"brand-intake/internal/intake"
)

// Assessment is the record of one completed submission.
type Assessment struct {
	ID        string             `json:"assessmentId"`
	Form      intake.IntakeForm  `json:"form"`
	Scores    intake.ScoreSet    `json:"scores"`
	Source    intake.ScoreSource `json:"scoreSource"`
	Kit       *intake.KitSource  `json:"kit,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (a Assessment) Outcome() intake.Outcome {
	return intake.Outcome{Scores: a.Scores, Source: a.Source, Kit: a.Kit}
}
