// internal/intake/screen.go
package intake

// Screen describes what the client renders for a state.
type Screen struct {
	Step    Step           `json:"step"`
	Title   string         `json:"title"`
	Steps   []string       `json:"steps"`
	Loading bool           `json:"loading"`
	Form    *FormScreen    `json:"form,omitempty"`
	Results *ResultsScreen `json:"results,omitempty"`
	Kit     *KitScreen     `json:"kit,omitempty"`
}

type FormScreen struct {
	Question Question `json:"question"`
	Value    string   `json:"value"`
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Progress float64  `json:"progress"`
	Error    string   `json:"error,omitempty"`
	// EnterAdvances is false for multi-line answers.
	EnterAdvances bool `json:"enterAdvances"`
	IsLast        bool `json:"isLast"`
}

type ScoreView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Classification
}

type ResultsScreen struct {
	BrandName string      `json:"brandName"`
	Source    ScoreSource `json:"source"`
	Scores    []ScoreView `json:"scores"`
	Findings  Findings    `json:"findings"`
	KitReady  bool        `json:"kitReady"`
}

type KitScreen struct {
	BrandName   string    `json:"brandName"`
	Origin      KitOrigin `json:"origin"`
	Kit         BrandKit  `json:"kit"`
	Overall     ScoreView `json:"overall"`
	ContactLink string    `json:"contactLink"`
}

// Render builds the screen for state. contactLink is shown on the Kit screen.
func Render(state State, contactLink string) Screen {
	if state == nil {
		state = Welcome{}
	}
	screen := Screen{
		Step:  state.Step(),
		Title: state.Step().Title(),
		Steps: StepTitles(),
	}

	switch s := state.(type) {
	case Collecting:
		q := s.Question()
		screen.Loading = s.Loading
		screen.Form = &FormScreen{
			Question:      q,
			Value:         s.Draft.Value(q.Field),
			Index:         s.SubStep,
			Total:         len(Questions),
			Progress:      float64(s.SubStep+1) / float64(len(Questions)) * 100,
			Error:         s.Errors[q.Field],
			EnterAdvances: !q.Multiline,
			IsLast:        s.SubStep == LastSubStep,
		}
	case Results:
		screen.Loading = s.Loading
		screen.Results = &ResultsScreen{
			BrandName: s.Form.BrandName,
			Source:    s.Source,
			Scores:    scoreViews(s.Scores),
			Findings:  SummarizeFindings(s.Form, s.Scores, s.Kit),
			KitReady:  s.Kit != nil,
		}
	case KitView:
		screen.Kit = &KitScreen{
			BrandName:   s.Form.BrandName,
			Origin:      s.Kit.Origin,
			Kit:         s.Kit.Kit,
			Overall:     scoreView("overall", s.Scores.Overall),
			ContactLink: contactLink,
		}
	}
	return screen
}

func scoreViews(s ScoreSet) []ScoreView {
	return []ScoreView{
		scoreView("overall", s.Overall),
		scoreView("awareness", s.Awareness),
		scoreView("consistency", s.Consistency),
		scoreView("engagement", s.Engagement),
	}
}

func scoreView(name string, value int) ScoreView {
	return ScoreView{Name: name, Value: value, Classification: Classify(value)}
}
