package slot

import (
	"math/rand"
	"strconv"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
)

// Engine Движок одной игровой сессии.
// Полностью синхронный, всё состояние явное, источник случайности внедряется
// снаружи — с фиксированным сидом поведение воспроизводимо
type Engine struct {
	cfg config.SlotConfig
	rng *rand.Rand

	credits            int
	currentBet         int
	isSpinning         bool
	totalSpins         int
	totalWins          int
	consecutiveWins    int
	maxConsecutiveWins int
	gameBlocked        bool
	sessionActive      bool
	spinsRemaining     int // -1, если бюджет спинов выключен
	bigPrizeTurn       int // номер спина с гарантированным призом, 0 — выключено
	bigPrizeAwarded    bool
}

var _ model.Engine = (*Engine)(nil)

// NewEngine Создаёт движок с начальным состоянием сессии
func NewEngine(cfg config.SlotConfig, rng *rand.Rand) *Engine {
	game := cfg.Game()
	bal := cfg.Balance()

	e := &Engine{
		cfg:           cfg,
		rng:           rng,
		credits:       game.InitialCredits,
		currentBet:    game.DefaultBet,
		sessionActive: true,
	}

	e.maxConsecutiveWins = bal.StreakCaps[0]

	// Спин большого приза выбирается один раз на сессию
	if bal.BigPrizeWindow > 0 {
		e.bigPrizeTurn = rng.Intn(bal.BigPrizeWindow) + 1
	}

	// Бюджет спинов разыгрывается в настроенном диапазоне
	e.spinsRemaining = -1
	if bal.SpinBudgetMax > 0 {
		e.spinsRemaining = bal.SpinBudgetMin + rng.Intn(bal.SpinBudgetMax-bal.SpinBudgetMin+1)
	}

	return e
}

// isValidBet Ставка в границах и не больше баланса
func (e *Engine) isValidBet(amount int) bool {
	game := e.cfg.Game()
	return amount >= game.MinBet && amount <= game.MaxBet && amount <= e.credits
}

// SetBet Устанавливает новую ставку. Невалидная ставка отклоняется без
// изменения состояния, повторная установка текущей ставки всегда успешна
func (e *Engine) SetBet(amount int) bool {
	if !e.isValidBet(amount) {
		return false
	}
	e.currentBet = amount
	return true
}

// Stats Текущая статистика игрока
func (e *Engine) Stats() model.Stats {
	winRate := "0.0"
	if e.totalSpins > 0 {
		winRate = strconv.FormatFloat(float64(e.totalWins)/float64(e.totalSpins)*100, 'f', 1, 64)
	}

	return model.Stats{
		Credits:        e.credits,
		CurrentBet:     e.currentBet,
		TotalSpins:     e.totalSpins,
		TotalWins:      e.totalWins,
		WinRate:        winRate,
		SpinsRemaining: e.spinsRemaining,
		SessionActive:  e.sessionActive,
		GameBlocked:    e.gameBlocked,
	}
}

// rollStreakCap Разыгрывает новый лимит серии побед из настроенного набора.
// Перебрасывается при старте серии и при каждом проигрыше, чтобы лимит
// оставался непредсказуемым
func (e *Engine) rollStreakCap() int {
	bal := e.cfg.Balance()

	var total float64
	for _, w := range bal.StreakCapWeights {
		total += w
	}

	r := e.rng.Float64() * total
	cum := 0.0
	for i, w := range bal.StreakCapWeights {
		cum += w
		if r < cum {
			return bal.StreakCaps[i]
		}
	}
	return bal.StreakCaps[len(bal.StreakCaps)-1]
}

// topSymbols Два самых дорогих символа: конфигурация упорядочивает символы
// от частых к редким, поэтому это два последних
func (e *Engine) topSymbols() (top, second string) {
	symbols := e.cfg.Symbols()
	return symbols[len(symbols)-1], symbols[len(symbols)-2]
}
