package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konvert/internal/domain/session"
	"konvert/pkg/errors"
)

func TestGetMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), 1)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestGetOrCreate(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.TelegramID)
	assert.Equal(t, session.StateChoosingMode, sess.State)
	assert.Equal(t, 1, store.Len())

	// Second call returns the same session, not a fresh one
	sess.State = session.StateEnteringAmount
	again, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, sess, again)
	assert.Equal(t, session.StateEnteringAmount, again.State)
	assert.Equal(t, 1, store.Len())
}

func TestSaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := session.New(7)
	sess.State = session.StateDepositTerm
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, 7)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, 1))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(ctx, 1)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	// Deleting an absent session is a no-op
	require.NoError(t, store.Delete(ctx, 1))
}

func TestConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				sess, err := store.GetOrCreate(ctx, id)
				assert.NoError(t, err)
				assert.NoError(t, store.Save(ctx, sess))
				_, _ = store.Get(ctx, id)
			}
		}(int64(i % 10))
	}
	wg.Wait()

	assert.Equal(t, 10, store.Len())
}
