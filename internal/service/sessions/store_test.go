package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, nopLogger{})

	created, err := store.Create()
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := NewStore(time.Hour, nopLogger{})

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_UniqueIDs(t *testing.T) {
	store := NewStore(time.Hour, nopLogger{})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := store.Create()
		require.NoError(t, err)
		require.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour, nopLogger{})

	s, err := store.Create()
	require.NoError(t, err)

	store.Delete(s.ID)

	_, err = store.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SweepRemovesExpired(t *testing.T) {
	store := NewStore(time.Minute, nopLogger{})

	s, err := store.Create()
	require.NoError(t, err)

	// До истечения TTL сессия остается
	removed := store.sweep(time.Now().Add(30 * time.Second))
	assert.Equal(t, 0, removed)

	removed = store.sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 1, removed)

	_, err = store.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetExtendsTTL(t *testing.T) {
	store := NewStore(time.Minute, nopLogger{})

	s, err := store.Create()
	require.NoError(t, err)

	// Обращение к сессии обновляет lastSeen: сессия переживает sweep,
	// который убил бы ее по времени создания
	time.Sleep(10 * time.Millisecond)
	_, err = store.Get(s.ID)
	require.NoError(t, err)

	removed := store.sweep(s.CreatedAt.Add(time.Minute + time.Millisecond))
	assert.Equal(t, 0, removed)
}
