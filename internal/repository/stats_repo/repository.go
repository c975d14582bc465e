package stats_repo

import (
	"sync"

	repoModel "slot_backend/internal/repository/stats_repo/model"

	log "github.com/sirupsen/logrus"
)

const (
	// defaultWindowSize Размер окна последних спинов для расчёта RTP
	defaultWindowSize = 500
	// logEverySpins Периодичность вывода RTP в лог
	logEverySpins = 25
)

// Реализация накопителя статистики казино.
// Движок балансирует выплаты сам, здесь RTP только наблюдается
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.CasinoState
}

// NewStatsRepository Конструктор с начальным состоянием
func NewStatsRepository() *StateRepo {
	return &StateRepo{
		state: repoModel.CasinoState{
			SpinWindow: make([]repoModel.SpinSample, 0),
			WindowSize: defaultWindowSize,
		},
	}
}

// CasinoState Возвращает копию текущего состояния
func (r *StateRepo) CasinoState() repoModel.CasinoState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.SpinWindow = append([]repoModel.SpinSample(nil), r.state.SpinWindow...)
	return state
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if bet > 0 {
		spinRTP = payout / bet * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinSample{
		Bet:    bet,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}

	if r.state.TotalSpins%logEverySpins == 0 {
		log.WithFields(log.Fields{
			"total_spins": r.state.TotalSpins,
			"current_rtp": r.state.CurrentRTP,
			"window_rtp":  r.state.WindowRTP,
		}).Debug("casino rtp state")
	}
}
