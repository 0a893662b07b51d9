// internal/intake/kit.go
package intake

import (
	"fmt"
	"strings"
)

// BrandKit is the generated brand identity shown on the Kit screen.
type BrandKit struct {
	Mission      string       `json:"mission"`
	Vision       string       `json:"vision"`
	Tagline      string       `json:"tagline"`
	Typography   string       `json:"typography"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Insights     []string     `json:"insights"`

	InsightSummary          string `json:"insightSummary,omitempty"`
	SummaryOfFindings       string `json:"summaryOfFindings,omitempty"`
	TaglineExplanation      string `json:"taglineExplanation,omitempty"`
	TypographyExplanation   string `json:"typographyExplanation,omitempty"`
	ColorPaletteExplanation string `json:"colorPaletteExplanation,omitempty"`
}

// ColorPalette is ordered primary, secondary, accent, background, text.
type ColorPalette [5]string

// KitOrigin tags a KitSource.
type KitOrigin string

const (
	KitRemote      KitOrigin = "remote"
	KitSynthesized KitOrigin = "synthesized"
)

// KitSource is a BrandKit tagged with where it was produced. Build one with
// Remote or Synthesized.
type KitSource struct {
	Origin KitOrigin `json:"origin"`
	Kit    BrandKit  `json:"kit"`
}

func Remote(kit BrandKit) KitSource {
	return KitSource{Origin: KitRemote, Kit: kit}
}

func Synthesized(kit BrandKit) KitSource {
	return KitSource{Origin: KitSynthesized, Kit: kit}
}

func (k KitSource) IsRemote() bool { return k.Origin == KitRemote }

var (
	DefaultTypography = "Modern Sans-Serif with clean, readable letterforms that convey professionalism and approachability"

	DefaultPalette = ColorPalette{"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444"}

	DefaultInsights = []string{
		"Strengthen your online presence with consistent visual branding",
		"Develop a content strategy that resonates with your target audience",
		"Implement customer feedback systems to improve engagement",
		"Create brand guidelines to ensure consistency across all touchpoints",
	}
)

// SynthesizeKit builds a kit from the form alone. The result depends only on
// the form.
func SynthesizeKit(form IntakeForm) BrandKit {
	industry := strings.ToLower(form.Industry)
	audience := strings.ToLower(form.TargetAudience)

	approach := "innovate and lead"
	if strings.Contains(strings.ToLower(form.BrandDescription), "help") {
		approach = "empower and support"
	}

	insights := make([]string, len(DefaultInsights))
	copy(insights, DefaultInsights)

	return BrandKit{
		Mission: fmt.Sprintf("To %s in the %s industry while delivering exceptional value to %s.",
			approach, industry, audience),
		Vision: fmt.Sprintf("To become the most trusted and recognized %s brand that transforms how %s experience our services.",
			industry, audience),
		Tagline:      fmt.Sprintf("%s - %s", form.BrandName, taglineSuffix(form.Industry)),
		Typography:   DefaultTypography,
		ColorPalette: DefaultPalette,
		Insights:     insights,
	}
}

// taglineSuffix matches case-sensitively against the industry as entered.
func taglineSuffix(industry string) string {
	switch {
	case strings.Contains(industry, "Tech"):
		return "Innovation Simplified"
	case strings.Contains(industry, "Health"):
		return "Wellness Redefined"
	default:
		return "Excellence Delivered"
	}
}
