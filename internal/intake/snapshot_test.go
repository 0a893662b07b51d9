package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSnapshot_RoundTrip(t *testing.T) {
	remote := Remote(BrandKit{Tagline: "t", ColorPalette: DefaultPalette, Insights: []string{"a"}})
	states := []State{
		Welcome{Draft: IntakeForm{BrandName: "Acme"}},
		Collecting{SubStep: 3, Draft: completeForm, Errors: map[Field]string{FieldTargetAudience: MsgRequired}},
		Collecting{SubStep: 4, Draft: completeForm, Loading: true},
		Results{Form: completeForm, Scores: ScoreSet{Overall: 82}, Source: SourceWebhook, Kit: &remote},
		Results{Form: completeForm, Scores: ScoreSet{Overall: 70}, Source: SourceFallback, Loading: true},
		KitView{Form: completeForm, Scores: ScoreSet{Overall: 70}, Source: SourceFallback, Kit: Synthesized(SynthesizeKit(completeForm))},
	}

	for _, s := range states {
		t.Run(s.variant(), func(t *testing.T) {
			data, err := MarshalState(s)
			require.NoError(t, err)

			got, err := UnmarshalState(data)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestUnmarshalState_Rejects(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`{"variant":"unknown"}`,
		`{"variant":"results"}`,
		`{"variant":"collecting","collecting":{"subStep":7}}`,
	} {
		_, err := UnmarshalState([]byte(raw))
		assert.Error(t, err, raw)
	}
}
