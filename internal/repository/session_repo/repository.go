package session_repo

import (
	"errors"
	"sync"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Одна сессия: движок плюс мьютекс для сериализации запросов
type session struct {
	mu  sync.Mutex
	eng model.Engine
}

type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*session
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*session),
	}
}

// Create Регистрирует движок и возвращает ID новой сессии
func (r *repo) Create(e model.Engine) string {
	id := uuid.NewString()

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[id] = &session{eng: e}

	return id
}

// Do Выполняет fn над движком сессии под её мьютексом
func (r *repo) Do(id string, fn func(e model.Engine) error) error {
	r.mtx.RLock()
	s, ok := r.sessions[id]
	r.mtx.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.eng)
}

func (r *repo) Delete(id string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.sessions, id)
}

func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}
