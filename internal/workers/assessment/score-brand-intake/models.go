// internal/workers/assessment/score-brand-intake/models.go
package scorebrandintake

import "brand-intake/internal/intake"

type Input struct {
	BrandName        string `json:"brandName"`
	BrandDescription string `json:"brandDescription"`
	Industry         string `json:"industry"`
	TargetAudience   string `json:"targetAudience"`
	WebsiteLink      string `json:"websiteLink"`
}

func (in Input) Form() intake.IntakeForm {
	return intake.IntakeForm{
		BrandName:        in.BrandName,
		BrandDescription: in.BrandDescription,
		Industry:         in.Industry,
		TargetAudience:   in.TargetAudience,
		WebsiteLink:      in.WebsiteLink,
	}
}

type Output struct {
	AssessmentID string                 `json:"assessmentId"`
	Scores       intake.ScoreSet        `json:"scores"`
	ScoreSource  intake.ScoreSource     `json:"scoreSource"`
	Tiers        map[string]intake.Tier `json:"tiers"`
	BrandKit     intake.BrandKit        `json:"brandKit"`
	KitSource    intake.KitOrigin       `json:"kitSource"`
}
