package slot

import (
	"slot_backend/internal/model"
)

// ExecuteSpin Выполняет полный цикл одного спина.
// Возвращает nil без каких-либо изменений состояния, если спин отклонён:
// движок уже крутит, ставка невалидна или сессия в терминальном состоянии.
// Принятый спин применяется атомарно — списание только после принятия
func (e *Engine) ExecuteSpin() *model.SpinResult {
	if e.isSpinning || e.gameBlocked || !e.sessionActive || !e.isValidBet(e.currentBet) {
		return nil
	}

	// Защита от повторного входа в пределах одного вызова
	e.isSpinning = true
	defer func() { e.isSpinning = false }()

	e.totalSpins++
	if e.spinsRemaining > 0 {
		e.spinsRemaining--
	}
	e.credits -= e.currentBet

	combination := e.spinReels()
	winnings := e.calculateWinnings(combination)

	game := e.cfg.Game()

	if winnings > 0 {
		e.credits += winnings

		// Абсолютный потолок баланса
		if game.MaxCredits > 0 && e.credits > game.MaxCredits {
			e.credits = game.MaxCredits
		}

		e.totalWins++
		e.consecutiveWins++

		// Большой приз считается выданным только если спин дотянул до джекпота
		if e.totalSpins == e.bigPrizeTurn && e.isJackpot(winnings) {
			e.bigPrizeAwarded = true
		}

		// Новая серия — новый лимит
		if e.consecutiveWins == 1 {
			e.maxConsecutiveWins = e.rollStreakCap()
		}
	} else {
		e.consecutiveWins = 0
		e.maxConsecutiveWins = e.rollStreakCap()
	}

	// Потолок баланса достигнут — сессия завершена
	if game.MaxCredits > 0 && e.credits >= game.MaxCredits {
		e.gameBlocked = true
	}

	// Бюджет спинов исчерпан — отдельное терминальное условие
	if e.spinsRemaining == 0 {
		e.sessionActive = false
	}

	return &model.SpinResult{
		Combination:     combination,
		Winnings:        winnings,
		Bet:             e.currentBet,
		CreditsAfter:    e.credits,
		IsWin:           winnings > 0,
		IsJackpot:       e.isJackpot(winnings),
		ConsecutiveWins: e.consecutiveWins,
		BigPrizeAwarded: e.bigPrizeAwarded,
		GameComplete:    e.gameBlocked,
		SessionOver:     !e.sessionActive,
		Terminal:        e.gameBlocked || !e.sessionActive,
		SpinsRemaining:  e.spinsRemaining,
		TotalSpins:      e.totalSpins,
		TotalWins:       e.totalWins,
	}
}
