// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/intake"
	"brand-intake/internal/session"
)

const maxRequestBytes = 64 << 10

// WizardResponse is returned by every wizard endpoint.
type WizardResponse struct {
	SessionID string        `json:"sessionId"`
	Screen    intake.Screen `json:"screen"`
}

// AnswerRequest sets the current question's value. Submit models pressing
// Enter: it advances unless the question takes multi-line text.
type AnswerRequest struct {
	Value  *string `json:"value"`
	Submit bool    `json:"submit"`
}

// transition is one wizard event applied to a loaded session.
type transition func(ctx context.Context, w *intake.Wizard, checkpoint intake.Checkpoint) error

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := session.NewID()
	wiz := intake.New()

	if err := s.store.Save(r.Context(), id, wiz.State()); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("session created", map[string]interface{}{"sessionId": id})
	s.respond(w, http.StatusCreated, id, wiz.State())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, state, err := s.load(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, id, state)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(_ context.Context, wiz *intake.Wizard, _ intake.Checkpoint) error {
		return wiz.Start()
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.writeError(w, r, errors.NewInvalidRequestError("body must be JSON: "+err.Error()))
		return
	}
	if req.Value == nil {
		s.writeError(w, r, errors.NewInvalidRequestError("value is required"))
		return
	}

	s.apply(w, r, func(ctx context.Context, wiz *intake.Wizard, checkpoint intake.Checkpoint) error {
		if err := wiz.Input(*req.Value); err != nil {
			return err
		}
		current := wiz.State().(intake.Collecting)
		if !req.Submit || current.Question().Multiline {
			return nil
		}
		return wiz.Next(context.WithoutCancel(ctx), s.service, checkpoint)
	})
}

// handleNext runs the submission detached from the request, so a client that
// disconnects mid-call still ends on Results.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(ctx context.Context, wiz *intake.Wizard, checkpoint intake.Checkpoint) error {
		return wiz.Next(context.WithoutCancel(ctx), s.service, checkpoint)
	})
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(_ context.Context, wiz *intake.Wizard, _ intake.Checkpoint) error {
		return wiz.Retreat()
	})
}

func (s *Server) handleKit(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(ctx context.Context, wiz *intake.Wizard, checkpoint intake.Checkpoint) error {
		return wiz.GenerateKit(ctx, s.service, checkpoint)
	})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.apply(w, r, func(_ context.Context, wiz *intake.Wizard, _ intake.Checkpoint) error {
		wiz.Restart()
		return nil
	})
}

// apply loads the session, runs fn and saves the resulting state.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, fn transition) {
	id, state, err := s.load(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	wiz := intake.Restore(state)
	s.service.Track(wiz)

	checkpointed := false
	checkpoint := func(st intake.State) error {
		if err := s.store.Save(r.Context(), id, st); err != nil {
			return err
		}
		checkpointed = true
		return nil
	}

	if err := fn(r.Context(), wiz, checkpoint); err != nil {
		// A failed kit synthesis has already persisted its loading flag.
		if errors.HasCode(err, errors.ErrCodeKitGenerationCancelled) {
			_ = s.store.Save(context.WithoutCancel(r.Context()), id, wiz.State())
		}
		s.writeError(w, r, err)
		return
	}

	saveCtx := context.WithoutCancel(r.Context())
	if err := s.store.Save(saveCtx, id, wiz.State()); err != nil {
		// The checkpoint left a loading state behind; put back what was loaded.
		if checkpointed {
			if rbErr := s.store.Save(saveCtx, id, state); rbErr != nil {
				s.logger.Error("failed to roll back session", map[string]interface{}{
					"sessionId": id,
					"error":     rbErr,
				})
			}
		}
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, id, wiz.State())
}

func (s *Server) load(r *http.Request) (string, intake.State, error) {
	id := getSessionID(r)
	if id == "" || !session.ValidID(id) {
		return "", nil, errors.NewSessionNotFoundError(id)
	}
	state, err := s.store.Load(r.Context(), id)
	if err != nil {
		return "", nil, err
	}
	return id, state, nil
}

func (s *Server) respond(w http.ResponseWriter, status int, id string, state intake.State) {
	SetSessionCookie(w, id, s.sessionTTL, s.secure)
	w.Header().Set(HeaderSessionID, id)
	writeJSON(w, status, WizardResponse{
		SessionID: id,
		Screen:    intake.Render(state, s.contactLink),
	})
}
