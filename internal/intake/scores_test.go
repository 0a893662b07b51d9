package intake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

func TestFallbackScores_StaysInRange(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		s := FallbackScores(src)
		assert.GreaterOrEqual(t, s.Overall, 70)
		assert.LessOrEqual(t, s.Overall, 99)
		assert.GreaterOrEqual(t, s.Awareness, 65)
		assert.LessOrEqual(t, s.Awareness, 94)
		assert.GreaterOrEqual(t, s.Consistency, 70)
		assert.LessOrEqual(t, s.Consistency, 99)
		assert.GreaterOrEqual(t, s.Engagement, 60)
		assert.LessOrEqual(t, s.Engagement, 89)
	}
}

func TestFallbackScores_Bounds(t *testing.T) {
	low := FallbackScores(fixedRand{n: 0})
	assert.Equal(t, ScoreSet{Overall: 70, Awareness: 65, Consistency: 70, Engagement: 60}, low)

	high := FallbackScores(fixedRand{n: 1 << 20})
	assert.Equal(t, ScoreSet{Overall: 99, Awareness: 94, Consistency: 99, Engagement: 89}, high)
}

func TestFallbackScores_DefaultSource(t *testing.T) {
	s := FallbackScores(nil)
	assert.GreaterOrEqual(t, s.Overall, 70)
	assert.LessOrEqual(t, s.Engagement, 89)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score     int
		wantTier  Tier
		wantLabel string
		wantColor string
	}{
		{100, TierExcellent, "Excellent", "text-emerald-600"},
		{80, TierExcellent, "Excellent", "text-emerald-600"},
		{79, TierGood, "Good", "text-amber-600"},
		{60, TierGood, "Good", "text-amber-600"},
		{59, TierElevatedConcern, "Needs Improvement", "text-orange-600"},
		{36, TierElevatedConcern, "Needs Improvement", "text-orange-600"},
		{35, TierLow, "Needs Improvement", "text-rose-500"},
		{10, TierLow, "Needs Improvement", "text-rose-500"},
		{0, TierLow, "Needs Improvement", "text-rose-500"},
	}

	for _, tt := range tests {
		c := Classify(tt.score)
		assert.Equal(t, tt.wantTier, c.Tier, "score %d", tt.score)
		assert.Equal(t, tt.wantLabel, c.Label, "score %d", tt.score)
		assert.Equal(t, tt.wantColor, c.TextColor, "score %d", tt.score)
	}
}

func TestClassify_SharedLabelDistinctColors(t *testing.T) {
	elevated := Classify(40)
	low := Classify(20)
	assert.Equal(t, elevated.Label, low.Label)
	assert.NotEqual(t, elevated.TextColor, low.TextColor)
	assert.NotEqual(t, elevated.Background, low.Background)
}

func TestScoreSet_Tiers(t *testing.T) {
	tiers := ScoreSet{Overall: 82, Awareness: 61, Consistency: 40, Engagement: 5}.Tiers()
	assert.Equal(t, map[string]Tier{
		"overall":     TierExcellent,
		"awareness":   TierGood,
		"consistency": TierElevatedConcern,
		"engagement":  TierLow,
	}, tiers)
}
