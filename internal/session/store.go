// internal/session/store.go
package session

import (
	"context"

	"brand-intake/internal/intake"

	"github.com/google/uuid"
)

// Store keeps one wizard state per session id.
type Store interface {
	Load(ctx context.Context, id string) (intake.State, error)
	Save(ctx context.Context, id string, state intake.State) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
