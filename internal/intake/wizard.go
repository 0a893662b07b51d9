// internal/intake/wizard.go
package intake

import (
	"context"

	"brand-intake/internal/common/errors"
)

// Step is the top-level screen index.
type Step int

const (
	StepWelcome Step = iota
	StepForm
	StepResults
	StepKit
)

var stepTitles = [...]string{"Welcome", "Brand Information", "Audit Results", "Brand Kit"}

func (s Step) Title() string {
	if s < StepWelcome || s > StepKit {
		return ""
	}
	return stepTitles[s]
}

// StepTitles lists the screen titles in order.
func StepTitles() []string {
	out := make([]string, len(stepTitles))
	copy(out, stepTitles[:])
	return out
}

// State is one of Welcome, Collecting, Results or KitView.
type State interface {
	Step() Step
	variant() string
}

// Welcome keeps the draft so that backing out of the form and starting again
// shows the answers already given.
type Welcome struct {
	Draft IntakeForm `json:"draft"`
}

// Collecting is the five-question form. Errors holds at most one entry.
type Collecting struct {
	SubStep int              `json:"subStep"`
	Draft   IntakeForm       `json:"draft"`
	Errors  map[Field]string `json:"errors,omitempty"`
	Loading bool             `json:"loading"`
}

type Results struct {
	Form    IntakeForm  `json:"form"`
	Scores  ScoreSet    `json:"scores"`
	Source  ScoreSource `json:"source"`
	Kit     *KitSource  `json:"kit,omitempty"`
	Loading bool        `json:"loading"`
}

type KitView struct {
	Form   IntakeForm  `json:"form"`
	Scores ScoreSet    `json:"scores"`
	Source ScoreSource `json:"source"`
	Kit    KitSource   `json:"kit"`
}

func (Welcome) Step() Step    { return StepWelcome }
func (Collecting) Step() Step { return StepForm }
func (Results) Step() Step    { return StepResults }
func (KitView) Step() Step    { return StepKit }

func (Welcome) variant() string    { return "welcome" }
func (Collecting) variant() string { return "collecting" }
func (Results) variant() string    { return "results" }
func (KitView) variant() string    { return "kit" }

// Question returns the question for the current sub-step.
func (c Collecting) Question() Question {
	return Questions[c.SubStep]
}

// Event names a wizard transition.
type Event string

const (
	EventStart      Event = "start"
	EventInput      Event = "input"
	EventAdvance    Event = "advance"
	EventRetreat    Event = "retreat"
	EventSubmitted  Event = "submitted"
	EventRequestKit Event = "request_kit"
	EventKitReady   Event = "kit_ready"
	EventRestart    Event = "restart"
)

// Outcome is the result of a submission, whichever path produced it.
type Outcome struct {
	Scores ScoreSet
	Source ScoreSource
	Kit    *KitSource
}

// Scorer runs the submission. It always yields an outcome; failures are
// absorbed by falling back to synthetic scores.
type Scorer interface {
	Score(ctx context.Context, form IntakeForm) Outcome
}

// KitGenerator synthesizes a kit when the submission did not provide one.
type KitGenerator interface {
	GenerateKit(ctx context.Context, form IntakeForm) (BrandKit, error)
}

// Checkpoint is called with the loading state before a slow operation runs.
type Checkpoint func(State) error

type Wizard struct {
	state        State
	onTransition func(Event, State)
}

func New() *Wizard {
	return &Wizard{state: Welcome{}}
}

// Restore resumes a wizard from a saved state. A nil state starts over.
func Restore(state State) *Wizard {
	if state == nil {
		state = Welcome{}
	}
	return &Wizard{state: state}
}

func (w *Wizard) State() State { return w.state }

// OnTransition registers fn to be called after every applied event.
func (w *Wizard) OnTransition(fn func(Event, State)) {
	w.onTransition = fn
}

func (w *Wizard) set(ev Event, s State) {
	w.state = s
	if w.onTransition != nil {
		w.onTransition(ev, s)
	}
}

func (w *Wizard) invalid(ev Event) error {
	return errors.NewInvalidTransitionError(string(ev), w.state.variant())
}

// Start moves from Welcome to the first question.
func (w *Wizard) Start() error {
	s, ok := w.state.(Welcome)
	if !ok {
		return w.invalid(EventStart)
	}
	w.set(EventStart, Collecting{SubStep: 0, Draft: s.Draft})
	return nil
}

// Input replaces the current question's answer. An error shown for that
// field is cleared, and so is a loading flag left by a submission that has
// not reported back to this session.
func (w *Wizard) Input(value string) error {
	s, ok := w.state.(Collecting)
	if !ok {
		return w.invalid(EventInput)
	}
	field := s.Question().Field
	next := Collecting{
		SubStep: s.SubStep,
		Draft:   s.Draft.With(field, value),
		Errors:  s.Errors,
	}
	if _, has := s.Errors[field]; has {
		next.Errors = nil
	}
	w.set(EventInput, next)
	return nil
}

// Advance validates the current answer. It reports true when the last
// question was accepted and the submission must now run; the state is then
// Collecting with Loading set.
func (w *Wizard) Advance() (bool, error) {
	s, ok := w.state.(Collecting)
	if !ok || s.Loading {
		return false, w.invalid(EventAdvance)
	}

	field := s.Question().Field
	if msg, valid := ValidateField(field, s.Draft.Value(field)); !valid {
		w.set(EventAdvance, Collecting{
			SubStep: s.SubStep,
			Draft:   s.Draft,
			Errors:  map[Field]string{field: msg},
		})
		return false, nil
	}

	if s.SubStep < LastSubStep {
		w.set(EventAdvance, Collecting{SubStep: s.SubStep + 1, Draft: s.Draft})
		return false, nil
	}

	w.set(EventAdvance, Collecting{SubStep: s.SubStep, Draft: s.Draft, Loading: true})
	return true, nil
}

// Complete applies a submission outcome and shows Results.
func (w *Wizard) Complete(out Outcome) error {
	s, ok := w.state.(Collecting)
	if !ok || !s.Loading {
		return w.invalid(EventSubmitted)
	}
	w.set(EventSubmitted, Results{
		Form:   s.Draft,
		Scores: out.Scores,
		Source: out.Source,
		Kit:    out.Kit,
	})
	return nil
}

// Retreat steps back one question, or to Welcome from the first one.
// It is accepted while a submission is loading and clears the flag.
func (w *Wizard) Retreat() error {
	s, ok := w.state.(Collecting)
	if !ok {
		return w.invalid(EventRetreat)
	}
	if s.SubStep > 0 {
		w.set(EventRetreat, Collecting{SubStep: s.SubStep - 1, Draft: s.Draft})
		return nil
	}
	w.set(EventRetreat, Welcome{Draft: s.Draft})
	return nil
}

// RequestKit moves to the Kit screen when a kit is already known and reports
// false. Otherwise it marks Results as loading and reports true; the caller
// must then synthesize a kit and call CompleteKit. On KitView it is a no-op.
func (w *Wizard) RequestKit() (bool, error) {
	switch s := w.state.(type) {
	case KitView:
		return false, nil
	case Results:
		if s.Kit != nil {
			w.set(EventRequestKit, KitView{Form: s.Form, Scores: s.Scores, Source: s.Source, Kit: *s.Kit})
			return false, nil
		}
		s.Loading = true
		w.set(EventRequestKit, s)
		return true, nil
	default:
		return false, w.invalid(EventRequestKit)
	}
}

// CompleteKit stores a synthesized kit and shows it. A kit that is already
// present is never replaced.
func (w *Wizard) CompleteKit(kit BrandKit) error {
	switch s := w.state.(type) {
	case KitView:
		return nil
	case Results:
		source := Synthesized(kit)
		if s.Kit != nil {
			source = *s.Kit
		}
		w.set(EventKitReady, KitView{Form: s.Form, Scores: s.Scores, Source: s.Source, Kit: source})
		return nil
	default:
		return w.invalid(EventKitReady)
	}
}

// abortKit clears the loading flag after a failed synthesis.
func (w *Wizard) abortKit() {
	if s, ok := w.state.(Results); ok && s.Loading {
		s.Loading = false
		w.state = s
	}
}

// Restart discards everything and returns to an empty Welcome.
func (w *Wizard) Restart() {
	w.set(EventRestart, Welcome{})
}

// Next is Advance followed, on the last question, by the submission. The
// checkpoint sees the loading state before scorer runs. The wizard ends on
// Results whatever the scorer's path was.
func (w *Wizard) Next(ctx context.Context, scorer Scorer, checkpoint Checkpoint) error {
	submit, err := w.Advance()
	if err != nil || !submit {
		return err
	}

	if checkpoint != nil {
		if err := checkpoint(w.state); err != nil {
			return err
		}
	}

	form := w.state.(Collecting).Draft
	return w.Complete(scorer.Score(ctx, form))
}

// GenerateKit shows the kit, synthesizing one through gen only when the
// submission did not return one.
func (w *Wizard) GenerateKit(ctx context.Context, gen KitGenerator, checkpoint Checkpoint) error {
	needed, err := w.RequestKit()
	if err != nil || !needed {
		return err
	}

	if checkpoint != nil {
		if err := checkpoint(w.state); err != nil {
			w.abortKit()
			return err
		}
	}

	kit, err := gen.GenerateKit(ctx, w.state.(Results).Form)
	if err != nil {
		w.abortKit()
		return err
	}
	return w.CompleteKit(kit)
}
