// internal/intake/summary.go
package intake

import "fmt"

// Findings is the two-paragraph summary on the Results screen.
type Findings struct {
	Strengths     string `json:"strengths"`
	Opportunities string `json:"opportunities"`
}

// SummarizeFindings prefers the kit's own summaries and fills the gaps from
// the scores.
func SummarizeFindings(form IntakeForm, scores ScoreSet, kit *KitSource) Findings {
	var f Findings
	if kit != nil {
		f.Strengths = kit.Kit.InsightSummary
		f.Opportunities = kit.Kit.SummaryOfFindings
	}

	if f.Strengths == "" {
		performance := "moderate"
		if scores.Overall >= 70 {
			performance = "strong"
		}
		f.Strengths = fmt.Sprintf("%s shows %s brand performance with particular strengths in %s.",
			form.BrandName, performance, strongestArea(scores))
	}

	if f.Opportunities == "" {
		f.Opportunities = fmt.Sprintf("Key opportunities for improvement include enhancing %s to drive overall brand growth.",
			weakestArea(scores))
	}

	return f
}

// Ties favour consistency, then awareness.
func strongestArea(s ScoreSet) string {
	switch {
	case s.Consistency >= s.Awareness && s.Consistency >= s.Engagement:
		return "brand consistency"
	case s.Awareness >= s.Engagement:
		return "brand awareness"
	default:
		return "brand engagement"
	}
}

// Awareness only wins when strictly lowest; ties fall through to engagement.
func weakestArea(s ScoreSet) string {
	switch {
	case s.Awareness < s.Consistency && s.Awareness < s.Engagement:
		return "brand awareness"
	case s.Consistency < s.Engagement:
		return "brand consistency"
	default:
		return "brand engagement"
	}
}
