// internal/webhook/parse.go
package webhook

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/intake"
)

// ParseResponse validates a 2xx response body and maps its output onto
// scores and a kit.
func ParseResponse(body []byte) (*Result, error) {
	check, err := outputSchema.ValidateBytes(body)
	if err != nil {
		return nil, errors.NewWebhookMalformedError(err.Error())
	}
	if !check.Valid {
		return nil, errors.NewWebhookMalformedError(strings.Join(check.GetErrorMessages(), "; "))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewWebhookMalformedError(err.Error())
	}
	out := resp.Output

	scores := intake.ScoreSet{}
	for _, p := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"brandScore", out.BrandScore, &scores.Overall},
		{"brandAwareness", out.BrandAwareness, &scores.Awareness},
		{"brandConsistency", out.BrandConsistency, &scores.Consistency},
		{"brandEngagement", out.BrandEngagement, &scores.Engagement},
	} {
		v, err := ParsePercentage(p.raw)
		if err != nil {
			return nil, errors.NewWebhookMalformedError(fmt.Sprintf("%s: %v", p.name, err))
		}
		*p.dst = v
	}

	insights := out.ActionableInsights
	if insights == nil {
		insights = []string{}
	}

	kit := intake.BrandKit{
		Mission:    out.BrandMission,
		Vision:     out.BrandVision,
		Tagline:    out.BrandTagline.Tagline,
		Typography: out.Typography.FontName,
		ColorPalette: intake.ColorPalette{
			out.ColorPalette.Primary,
			out.ColorPalette.Secondary,
			out.ColorPalette.Accent,
			out.ColorPalette.Background,
			out.ColorPalette.Text,
		},
		Insights:                insights,
		InsightSummary:          out.InsightSummaryAudit,
		SummaryOfFindings:       out.SummaryOfFindingsAudit,
		TaglineExplanation:      out.TaglineExplanation,
		TypographyExplanation:   out.TypographyExplanation,
		ColorPaletteExplanation: out.ColorPaletteExplanation,
	}

	return &Result{Scores: scores, Kit: kit}, nil
}

const (
	minPercentage = 0
	maxPercentage = 100
)

// ParsePercentage turns "82%" into 82. Fractions are truncated and values
// outside 0-100 are rejected.
func ParsePercentage(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, fmt.Errorf("empty percentage")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid percentage %q", raw)
	}
	if f < minPercentage || f > maxPercentage {
		return 0, fmt.Errorf("percentage %q out of range", raw)
	}
	return int(f), nil
}
