// internal/webhook/models.go
package webhook

import "brand-intake/internal/intake"

// Payload is one element of the request body array.
type Payload struct {
	BrandName        string `json:"brandName"`
	Industry         string `json:"industry"`
	Website          string `json:"website"`
	BrandDescription string `json:"brandDescription"`
	TargetAudience   string `json:"targetAudience"`
}

// NewPayload maps the form onto the single-element request body.
func NewPayload(form intake.IntakeForm) []Payload {
	return []Payload{{
		BrandName:        form.BrandName,
		Industry:         form.Industry,
		Website:          form.WebsiteLink,
		BrandDescription: form.BrandDescription,
		TargetAudience:   form.TargetAudience,
	}}
}

type Response struct {
	Output Output `json:"output"`
}

type Output struct {
	BrandScore       string `json:"brandScore"`
	BrandAwareness   string `json:"brandAwareness"`
	BrandConsistency string `json:"brandConsistency"`
	BrandEngagement  string `json:"brandEngagement"`

	BrandMission string `json:"brandMission"`
	BrandVision  string `json:"brandVision"`
	BrandTagline struct {
		Tagline string `json:"tagline"`
	} `json:"brandTagline"`
	Typography struct {
		FontName string `json:"fontName"`
	} `json:"typography"`
	ColorPalette struct {
		Primary    string `json:"primary"`
		Secondary  string `json:"secondary"`
		Accent     string `json:"accent"`
		Background string `json:"background"`
		Text       string `json:"text"`
	} `json:"colorPalette"`
	ActionableInsights []string `json:"actionableInsights"`

	InsightSummaryAudit     string `json:"insightSummaryAudit"`
	SummaryOfFindingsAudit  string `json:"summaryOfFindingsAudit"`
	TaglineExplanation      string `json:"taglineExplanation"`
	TypographyExplanation   string `json:"typographyExplanation"`
	ColorPaletteExplanation string `json:"colorPaletteExplanation"`
}

// Result is a parsed webhook response.
type Result struct {
	Scores intake.ScoreSet
	Kit    intake.BrandKit
}
