package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	screen := Render(Welcome{}, "")
	assert.Equal(t, StepWelcome, screen.Step)
	assert.Equal(t, "Welcome", screen.Title)
	assert.Len(t, screen.Steps, 4)
	assert.Nil(t, screen.Form)
	assert.Nil(t, screen.Results)
	assert.Nil(t, screen.Kit)
}

func TestRender_Form(t *testing.T) {
	screen := Render(Collecting{
		SubStep: 2,
		Draft:   completeForm,
		Errors:  map[Field]string{FieldBrandDescription: MsgRequired},
	}, "")

	require.NotNil(t, screen.Form)
	assert.Equal(t, StepForm, screen.Step)
	assert.Equal(t, FieldBrandDescription, screen.Form.Question.Field)
	assert.Equal(t, completeForm.BrandDescription, screen.Form.Value)
	assert.Equal(t, 2, screen.Form.Index)
	assert.Equal(t, 5, screen.Form.Total)
	assert.InDelta(t, 60.0, screen.Form.Progress, 0.001)
	assert.Equal(t, MsgRequired, screen.Form.Error)
	assert.False(t, screen.Form.EnterAdvances)
	assert.False(t, screen.Form.IsLast)

	last := Render(Collecting{SubStep: LastSubStep, Loading: true}, "")
	assert.True(t, last.Loading)
	assert.True(t, last.Form.IsLast)
	assert.True(t, last.Form.EnterAdvances)
	assert.InDelta(t, 100.0, last.Form.Progress, 0.001)
}

func TestRender_Results(t *testing.T) {
	screen := Render(Results{
		Form:   completeForm,
		Scores: ScoreSet{Overall: 82, Awareness: 59, Consistency: 61, Engagement: 20},
		Source: SourceWebhook,
	}, "")

	require.NotNil(t, screen.Results)
	assert.Equal(t, "Acme", screen.Results.BrandName)
	assert.False(t, screen.Results.KitReady)
	require.Len(t, screen.Results.Scores, 4)
	assert.Equal(t, "overall", screen.Results.Scores[0].Name)
	assert.Equal(t, TierExcellent, screen.Results.Scores[0].Tier)
	assert.Equal(t, TierElevatedConcern, screen.Results.Scores[1].Tier)
	assert.Equal(t, TierGood, screen.Results.Scores[2].Tier)
	assert.Equal(t, TierLow, screen.Results.Scores[3].Tier)
	assert.Contains(t, screen.Results.Findings.Strengths, "Acme shows strong")
}

func TestRender_Kit(t *testing.T) {
	link := ContactLink("contact@proweaver.com", "Brand Kit Access Request")
	screen := Render(KitView{
		Form:   completeForm,
		Scores: ScoreSet{Overall: 45},
		Kit:    Synthesized(SynthesizeKit(completeForm)),
	}, link)

	require.NotNil(t, screen.Kit)
	assert.Equal(t, StepKit, screen.Step)
	assert.Equal(t, KitSynthesized, screen.Kit.Origin)
	assert.Equal(t, "Acme - Innovation Simplified", screen.Kit.Kit.Tagline)
	assert.Equal(t, TierElevatedConcern, screen.Kit.Overall.Tier)
	assert.Equal(t, link, screen.Kit.ContactLink)
}
