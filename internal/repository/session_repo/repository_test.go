package session_repo

import (
	"testing"

	"slot_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Минимальный движок для проверки хранилища
type fakeEngine struct {
	spins int
}

func (f *fakeEngine) SetBet(int) bool { return true }

func (f *fakeEngine) ExecuteSpin() *model.SpinResult {
	f.spins++
	return &model.SpinResult{}
}

func (f *fakeEngine) Stats() model.Stats {
	return model.Stats{TotalSpins: f.spins}
}

func TestCreateAndDo(t *testing.T) {
	r := NewSessionRepository()
	eng := &fakeEngine{}

	id := r.Create(eng)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, r.Count())

	err := r.Do(id, func(e model.Engine) error {
		e.ExecuteSpin()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, eng.spins)
}

func TestDoUnknownSession(t *testing.T) {
	r := NewSessionRepository()

	err := r.Do("missing", func(e model.Engine) error { return nil })
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	r := NewSessionRepository()
	id := r.Create(&fakeEngine{})

	r.Delete(id)
	assert.Zero(t, r.Count())

	err := r.Do(id, func(e model.Engine) error { return nil })
	require.ErrorIs(t, err, ErrSessionNotFound)
}

// ID сессий уникальны
func TestCreateUniqueIDs(t *testing.T) {
	r := NewSessionRepository()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := r.Create(&fakeEngine{})
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
