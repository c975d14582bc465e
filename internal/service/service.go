package service

import (
	"context"
	"errors"

	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/stats_repo/model"
)

// Закрытый перечень отказов: ядро не бросает ошибок, отказ — это отказ
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidBet      = errors.New("invalid bet")
	ErrSpinRejected    = errors.New("spin rejected")
)

type SlotService interface {
	NewSession(ctx context.Context) (*model.SessionInfo, error)
	SetBet(ctx context.Context, sessionID string, amount int) (*model.Stats, error)
	Spin(ctx context.Context, sessionID string) (*model.SpinResult, error)
	Stats(ctx context.Context, sessionID string) (*model.Stats, error)
	CasinoState(ctx context.Context) (statsModel.CasinoState, error)
}
