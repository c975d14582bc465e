package repository

import (
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/stats_repo/model"
)

// SessionRepository Хранилище живых игровых сессий.
// Сессии живут только в памяти процесса и умирают вместе с ним
type SessionRepository interface {
	Create(e model.Engine) (id string)
	// Do выполняет fn под мьютексом сессии: движок однопоточный,
	// и параллельные HTTP-запросы к одной сессии сериализуются здесь
	Do(id string, fn func(e model.Engine) error) error
	Delete(id string)
	Count() int
}

// StatsRepository Накопитель статистики казино по всем сессиям
type StatsRepository interface {
	UpdateState(bet, payout float64)
	CasinoState() statsModel.CasinoState
}
