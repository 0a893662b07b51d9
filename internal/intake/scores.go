// internal/intake/scores.go
package intake

import (
	"math/rand"
	"sync"
	"time"
)

// ScoreSet is produced once per submission and never mutated.
type ScoreSet struct {
	Overall     int `json:"overall"`
	Awareness   int `json:"awareness"`
	Consistency int `json:"consistency"`
	Engagement  int `json:"engagement"`
}

// ScoreSource records where a ScoreSet came from.
type ScoreSource string

const (
	SourceWebhook  ScoreSource = "webhook"
	SourceFallback ScoreSource = "fallback"
)

// Fallback floors; each range covers fallbackSpan consecutive values.
const (
	fallbackSpan     = 30
	overallFloor     = 70
	awarenessFloor   = 65
	consistencyFloor = 70
	engagementFloor  = 60
)

// IntSource is the subset of *rand.Rand used by the fallback generator.
type IntSource interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

var defaultRand IntSource = &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// FallbackScores synthesizes scores when the webhook is unavailable.
// A nil src uses a shared time-seeded source.
func FallbackScores(src IntSource) ScoreSet {
	if src == nil {
		src = defaultRand
	}
	return ScoreSet{
		Overall:     overallFloor + src.Intn(fallbackSpan),
		Awareness:   awarenessFloor + src.Intn(fallbackSpan),
		Consistency: consistencyFloor + src.Intn(fallbackSpan),
		Engagement:  engagementFloor + src.Intn(fallbackSpan),
	}
}

type Tier string

const (
	TierExcellent       Tier = "excellent"
	TierGood            Tier = "good"
	TierElevatedConcern Tier = "elevated-concern"
	TierLow             Tier = "low"
)

// Classification is the display treatment of a single score.
type Classification struct {
	Tier       Tier   `json:"tier"`
	Label      string `json:"label"`
	TextColor  string `json:"textColor"`
	Background string `json:"background"`
	BarColor   string `json:"barColor"`
}

var classifications = map[Tier]Classification{
	TierExcellent: {
		Tier: TierExcellent, Label: "Excellent",
		TextColor: "text-emerald-600", Background: "bg-emerald-50 border-emerald-200", BarColor: "bg-emerald-600",
	},
	TierGood: {
		Tier: TierGood, Label: "Good",
		TextColor: "text-amber-600", Background: "bg-amber-50 border-amber-200", BarColor: "bg-amber-600",
	},
	// Shares its label with TierLow; only the color differs.
	TierElevatedConcern: {
		Tier: TierElevatedConcern, Label: "Needs Improvement",
		TextColor: "text-orange-600", Background: "bg-orange-50 border-orange-200", BarColor: "bg-orange-600",
	},
	TierLow: {
		Tier: TierLow, Label: "Needs Improvement",
		TextColor: "text-rose-500", Background: "bg-rose-50 border-rose-200", BarColor: "bg-rose-500",
	},
}

func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 36:
		return TierElevatedConcern
	default:
		return TierLow
	}
}

func Classify(score int) Classification {
	return classifications[TierFor(score)]
}

// Tiers classifies every score in the set.
func (s ScoreSet) Tiers() map[string]Tier {
	return map[string]Tier{
		"overall":     TierFor(s.Overall),
		"awareness":   TierFor(s.Awareness),
		"consistency": TierFor(s.Consistency),
		"engagement":  TierFor(s.Engagement),
	}
}
