package session

import (
	"context"
	"testing"
	"time"

	"brand-intake/internal/common/errors"
	"brand-intake/internal/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))

	require.NoError(t, store.Save(ctx, "a", sampleState))
	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, sampleState, got)

	// loaded states do not alias the stored one
	sampleCopy := got.(intake.Collecting)
	sampleCopy.Errors[intake.FieldBrandName] = "x"
	again, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, again.(intake.Collecting).Errors, 1)

	now = now.Add(2 * time.Minute)
	_, err = store.Load(ctx, "a")
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))

	require.NoError(t, store.Save(ctx, "b", intake.Welcome{}))
	require.NoError(t, store.Delete(ctx, "b"))
	_, err = store.Load(ctx, "b")
	assert.True(t, errors.HasCode(err, errors.ErrCodeSessionNotFound))
	assert.NoError(t, store.Ping(ctx))
}
