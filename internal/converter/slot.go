package converter

import (
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/stats_repo/model"
)

func ToNewSessionResponse(info model.SessionInfo) dto.NewSessionResponse {
	return dto.NewSessionResponse{
		SessionID: info.SessionID,
		Stats:     ToStatsResponse(info.Stats),
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Combination:     res.Combination,
		Winnings:        res.Winnings,
		Bet:             res.Bet,
		CreditsAfter:    res.CreditsAfter,
		IsWin:           res.IsWin,
		IsJackpot:       res.IsJackpot,
		ConsecutiveWins: res.ConsecutiveWins,
		BigPrizeAwarded: res.BigPrizeAwarded,
		GameComplete:    res.GameComplete,
		SessionOver:     res.SessionOver,
		Terminal:        res.Terminal,
		SpinsRemaining:  res.SpinsRemaining,
		TotalSpins:      res.TotalSpins,
		TotalWins:       res.TotalWins,
	}
}

func ToStatsResponse(stats model.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		Credits:        stats.Credits,
		CurrentBet:     stats.CurrentBet,
		TotalSpins:     stats.TotalSpins,
		TotalWins:      stats.TotalWins,
		WinRate:        stats.WinRate,
		SpinsRemaining: stats.SpinsRemaining,
		SessionActive:  stats.SessionActive,
		GameBlocked:    stats.GameBlocked,
	}
}

func ToCasinoStateResponse(state statsModel.CasinoState) dto.CasinoStateResponse {
	return dto.CasinoStateResponse{
		TotalSpins:  state.TotalSpins,
		TotalBet:    state.TotalBet,
		TotalPayout: state.TotalPayout,
		CurrentRTP:  state.CurrentRTP,
		WindowRTP:   state.WindowRTP,
	}
}
