package slot

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"slot_backend/internal/config"
	"slot_backend/internal/metrics"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/session_repo"
	statsModel "slot_backend/internal/repository/stats_repo/model"
	"slot_backend/internal/service"

	log "github.com/sirupsen/logrus"
)

type serv struct {
	cfg       config.SlotConfig
	sessions  repository.SessionRepository
	statsRepo repository.StatsRepository
}

// NewSlotService Создать сервис игрового автомата
func NewSlotService(
	cfg config.SlotConfig,
	sessions repository.SessionRepository,
	statsRepo repository.StatsRepository,
) service.SlotService {
	return &serv{
		cfg:       cfg,
		sessions:  sessions,
		statsRepo: statsRepo,
	}
}

// NewSession Создаёт сессию с собственным движком и источником случайности
func (s *serv) NewSession(_ context.Context) (*model.SessionInfo, error) {
	eng := NewEngine(s.cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	id := s.sessions.Create(eng)

	metrics.SessionsCreated.Inc()
	log.WithField("session_id", id).Info("session created")

	return &model.SessionInfo{
		SessionID: id,
		Stats:     eng.Stats(),
	}, nil
}

// SetBet Устанавливает ставку в сессии
func (s *serv) SetBet(_ context.Context, sessionID string, amount int) (*model.Stats, error) {
	var stats model.Stats
	err := s.sessions.Do(sessionID, func(e model.Engine) error {
		if !e.SetBet(amount) {
			return service.ErrInvalidBet
		}
		stats = e.Stats()
		return nil
	})
	if err != nil {
		return nil, s.mapSessionErr(err)
	}
	return &stats, nil
}

// Spin Выполняет спин в сессии и обновляет статистику казино
func (s *serv) Spin(_ context.Context, sessionID string) (*model.SpinResult, error) {
	var res *model.SpinResult
	err := s.sessions.Do(sessionID, func(e model.Engine) error {
		res = e.ExecuteSpin()
		if res == nil {
			return service.ErrSpinRejected
		}
		return nil
	})
	if err != nil {
		return nil, s.mapSessionErr(err)
	}

	s.statsRepo.UpdateState(float64(res.Bet), float64(res.Winnings))

	metrics.SpinsTotal.Inc()
	metrics.BetVolume.Add(float64(res.Bet))
	metrics.PayoutVolume.Add(float64(res.Winnings))
	if res.IsWin {
		metrics.WinsTotal.Inc()
	}
	if res.IsJackpot {
		metrics.JackpotsTotal.Inc()
	}

	log.WithFields(log.Fields{
		"session_id":  sessionID,
		"combination": res.Combination,
		"bet":         res.Bet,
		"winnings":    res.Winnings,
		"credits":     res.CreditsAfter,
		"terminal":    res.Terminal,
	}).Debug("spin settled")

	if res.Terminal {
		log.WithFields(log.Fields{
			"session_id":  sessionID,
			"total_spins": res.TotalSpins,
			"total_wins":  res.TotalWins,
			"credits":     res.CreditsAfter,
		}).Info("session reached terminal state")
	}

	return res, nil
}

// Stats Текущая статистика сессии
func (s *serv) Stats(_ context.Context, sessionID string) (*model.Stats, error) {
	var stats model.Stats
	err := s.sessions.Do(sessionID, func(e model.Engine) error {
		stats = e.Stats()
		return nil
	})
	if err != nil {
		return nil, s.mapSessionErr(err)
	}
	return &stats, nil
}

// CasinoState Сводная статистика по всем сессиям
func (s *serv) CasinoState(_ context.Context) (statsModel.CasinoState, error) {
	return s.statsRepo.CasinoState(), nil
}

func (s *serv) mapSessionErr(err error) error {
	if errors.Is(err, session_repo.ErrSessionNotFound) {
		return service.ErrSessionNotFound
	}
	return err
}
