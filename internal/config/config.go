package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotConfig Конфигурация игрового автомата.
// Все числовые пороги балансировки — настройка, а не константы кода
type SlotConfig interface {
	// Symbols Символы в порядке от самого частого к самому редкому
	Symbols() []string
	// Payouts Множители за три одинаковых символа
	Payouts() map[string]decimal.Decimal
	// PairPayouts Множители за пару, ключ — символ дважды ("🍒🍒")
	PairPayouts() map[string]decimal.Decimal
	// SpecialCombos Множители за точные последовательности (с учётом порядка)
	SpecialCombos() map[string]decimal.Decimal
	// Probabilities Базовые веса символов, в сумме 1.0
	Probabilities() map[string]float64
	Game() GameRules
	Balance() BalanceRules
}

type HTTPConfig interface {
	Address() string
}

// GameRules Общие правила игры
type GameRules struct {
	InitialCredits    int
	MinBet            int
	MaxBet            int
	DefaultBet        int
	Reels             int
	MaxCredits        int
	JackpotMultiplier int
}

// BalanceRules Пороги балансирующих политик движка.
// Значения подобраны под конкретный вариант игры и живут в config.yaml
type BalanceRules struct {
	// Разовый большой приз в начале сессии
	BigPrizeWindow   int                // приз назначается на случайный спин из первых N
	BigPrizeBets     []int              // ставки, при которых приз разыгрывается
	BigPrizeTopShare float64            // доля тройки топ-символа, остаток — второй по выплате
	BigPrizeProbs    map[string]float64 // распределение для спина с призом

	// Бонусный коридор баланса
	PremiumMinCredits int
	PremiumMaxCredits int
	PremiumBets       []int
	PremiumReelChance float64 // вероятность премиум-символа на каждом барабане
	PremiumProbs      map[string]float64

	// Защита от разорения
	RescueFloor int
	RescueProbs map[string]float64

	// Контроль серии побед
	StreakCaps       []int
	StreakCapWeights []float64
	StreakProbs      map[string]float64

	// Затухание при высоком балансе
	DampingStart int
	DampingSpan  int
	DampingFloor float64
	DampingShift float64 // снятая масса уходит на самый частый символ

	// Бюджет спинов на сессию, 0/0 — выключено
	SpinBudgetMin int
	SpinBudgetMax int
}
