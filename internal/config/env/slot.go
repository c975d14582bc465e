package env

import (
	"errors"
	"fmt"
	"math"
	"os"

	"slot_backend/internal/config"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Допуск при проверке нормировки базовых вероятностей
const probSumTolerance = 1e-9

// Структуры для разбора config.yaml
type yamlSlotConfig struct {
	Slot struct {
		Symbols       []string           `yaml:"symbols"`
		Payouts       map[string]float64 `yaml:"payouts"`
		PairPayouts   map[string]float64 `yaml:"pair_payouts"`
		SpecialCombos map[string]float64 `yaml:"special_combos"`
		Probabilities map[string]float64 `yaml:"probabilities"`
		Game          struct {
			InitialCredits    int `yaml:"initial_credits"`
			MinBet            int `yaml:"min_bet"`
			MaxBet            int `yaml:"max_bet"`
			DefaultBet        int `yaml:"default_bet"`
			Reels             int `yaml:"reels"`
			MaxCredits        int `yaml:"max_credits"`
			JackpotMultiplier int `yaml:"jackpot_multiplier"`
		} `yaml:"game"`
		Balance struct {
			BigPrize struct {
				Window        int                `yaml:"window"`
				Bets          []int              `yaml:"bets"`
				TopShare      float64            `yaml:"top_share"`
				Probabilities map[string]float64 `yaml:"probabilities"`
			} `yaml:"big_prize"`
			Premium struct {
				MinCredits    int                `yaml:"min_credits"`
				MaxCredits    int                `yaml:"max_credits"`
				Bets          []int              `yaml:"bets"`
				ReelChance    float64            `yaml:"reel_chance"`
				Probabilities map[string]float64 `yaml:"probabilities"`
			} `yaml:"premium"`
			Rescue struct {
				Floor         int                `yaml:"floor"`
				Probabilities map[string]float64 `yaml:"probabilities"`
			} `yaml:"rescue"`
			Streak struct {
				Caps          []int              `yaml:"caps"`
				Weights       []float64          `yaml:"weights"`
				Probabilities map[string]float64 `yaml:"probabilities"`
			} `yaml:"streak"`
			Damping struct {
				Start int     `yaml:"start"`
				Span  int     `yaml:"span"`
				Floor float64 `yaml:"floor"`
				Shift float64 `yaml:"shift"`
			} `yaml:"damping"`
			Session struct {
				MinSpins int `yaml:"min_spins"`
				MaxSpins int `yaml:"max_spins"`
			} `yaml:"session"`
		} `yaml:"balance"`
	} `yaml:"slot"`
}

type slotConfig struct {
	symbols       []string
	payouts       map[string]decimal.Decimal
	pairPayouts   map[string]decimal.Decimal
	specialCombos map[string]decimal.Decimal
	probabilities map[string]float64
	game          config.GameRules
	balance       config.BalanceRules
}

// NewSlotConfigFromYAML Загружает и валидирует конфигурацию автомата.
// Некорректные таблицы вероятностей — фатальная ошибка на старте,
// движок на рантайме нормировку уже не проверяет
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot config: %w", err)
	}

	var parsed yamlSlotConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse slot config: %w", err)
	}

	s := parsed.Slot

	cfg := &slotConfig{
		symbols:       s.Symbols,
		payouts:       toDecimalMap(s.Payouts),
		pairPayouts:   toDecimalMap(s.PairPayouts),
		specialCombos: toDecimalMap(s.SpecialCombos),
		probabilities: s.Probabilities,
		game: config.GameRules{
			InitialCredits:    s.Game.InitialCredits,
			MinBet:            s.Game.MinBet,
			MaxBet:            s.Game.MaxBet,
			DefaultBet:        s.Game.DefaultBet,
			Reels:             s.Game.Reels,
			MaxCredits:        s.Game.MaxCredits,
			JackpotMultiplier: s.Game.JackpotMultiplier,
		},
		balance: config.BalanceRules{
			BigPrizeWindow:    s.Balance.BigPrize.Window,
			BigPrizeBets:      s.Balance.BigPrize.Bets,
			BigPrizeTopShare:  s.Balance.BigPrize.TopShare,
			BigPrizeProbs:     s.Balance.BigPrize.Probabilities,
			PremiumMinCredits: s.Balance.Premium.MinCredits,
			PremiumMaxCredits: s.Balance.Premium.MaxCredits,
			PremiumBets:       s.Balance.Premium.Bets,
			PremiumReelChance: s.Balance.Premium.ReelChance,
			PremiumProbs:      s.Balance.Premium.Probabilities,
			RescueFloor:       s.Balance.Rescue.Floor,
			RescueProbs:       s.Balance.Rescue.Probabilities,
			StreakCaps:        s.Balance.Streak.Caps,
			StreakCapWeights:  s.Balance.Streak.Weights,
			StreakProbs:       s.Balance.Streak.Probabilities,
			DampingStart:      s.Balance.Damping.Start,
			DampingSpan:       s.Balance.Damping.Span,
			DampingFloor:      s.Balance.Damping.Floor,
			DampingShift:      s.Balance.Damping.Shift,
			SpinBudgetMin:     s.Balance.Session.MinSpins,
			SpinBudgetMax:     s.Balance.Session.MaxSpins,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}

	return cfg, nil
}

func toDecimalMap(src map[string]float64) map[string]decimal.Decimal {
	dst := make(map[string]decimal.Decimal, len(src))
	for k, v := range src {
		dst[k] = decimal.NewFromFloat(v)
	}
	return dst
}

// Валидация конфигурации на старте
func (c *slotConfig) validate() error {
	if len(c.symbols) < 3 {
		return errors.New("at least 3 symbols required")
	}

	seen := make(map[string]struct{}, len(c.symbols))
	for _, sym := range c.symbols {
		if _, ok := seen[sym]; ok {
			return fmt.Errorf("duplicate symbol %q", sym)
		}
		seen[sym] = struct{}{}

		// У каждого символа должна быть выплата за тройку,
		// иначе спасательная политика не гарантирует выигрыш
		mult, ok := c.payouts[sym]
		if !ok || !mult.IsPositive() {
			return fmt.Errorf("symbol %q has no positive payout", sym)
		}
	}

	// Комбинационные правила написаны под ровно три барабана
	if c.game.Reels != 3 {
		return errors.New("only 3 reels are supported")
	}

	if c.game.MinBet <= 0 || c.game.MinBet > c.game.MaxBet {
		return errors.New("bet bounds must satisfy 0 < min_bet <= max_bet")
	}
	if c.game.DefaultBet < c.game.MinBet || c.game.DefaultBet > c.game.MaxBet {
		return errors.New("default_bet must be within bet bounds")
	}
	if c.game.InitialCredits < c.game.MinBet {
		return errors.New("initial_credits must cover at least one min bet")
	}
	if c.game.JackpotMultiplier <= 0 {
		return errors.New("jackpot_multiplier must be positive")
	}

	// Базовое распределение обязано быть нормированным
	if err := c.validateDistribution("probabilities", c.probabilities, true); err != nil {
		return err
	}

	// Таблицы политик нормируются движком, но сумма обязана быть положительной
	// и каждый символ должен иметь строго положительный вес
	for name, probs := range map[string]map[string]float64{
		"big_prize.probabilities": c.balance.BigPrizeProbs,
		"premium.probabilities":   c.balance.PremiumProbs,
		"rescue.probabilities":    c.balance.RescueProbs,
		"streak.probabilities":    c.balance.StreakProbs,
	} {
		if err := c.validateDistribution(name, probs, false); err != nil {
			return err
		}
	}

	if len(c.balance.StreakCaps) == 0 || len(c.balance.StreakCaps) != len(c.balance.StreakCapWeights) {
		return errors.New("streak caps and weights must be non-empty and of equal length")
	}
	if c.balance.DampingFloor <= 0 || c.balance.DampingFloor > 1 {
		return errors.New("damping.floor must be in (0, 1]")
	}
	if c.balance.DampingStart > 0 && c.balance.DampingSpan <= 0 {
		return errors.New("damping.span must be positive")
	}
	if c.balance.SpinBudgetMin < 0 || c.balance.SpinBudgetMax < c.balance.SpinBudgetMin {
		return errors.New("session spin budget range is invalid")
	}

	return nil
}

func (c *slotConfig) validateDistribution(name string, probs map[string]float64, normalized bool) error {
	var sum float64
	for _, sym := range c.symbols {
		p, ok := probs[sym]
		if !ok || p <= 0 {
			return fmt.Errorf("%s: symbol %q must have a positive weight", name, sym)
		}
		sum += p
	}
	if sum <= 0 {
		return fmt.Errorf("%s: weights must sum to a positive number", name)
	}
	if normalized && math.Abs(sum-1.0) > probSumTolerance {
		return fmt.Errorf("%s: weights must sum to 1.0, got %g", name, sum)
	}
	return nil
}

func (c *slotConfig) Symbols() []string {
	return c.symbols
}

func (c *slotConfig) Payouts() map[string]decimal.Decimal {
	return c.payouts
}

func (c *slotConfig) PairPayouts() map[string]decimal.Decimal {
	return c.pairPayouts
}

func (c *slotConfig) SpecialCombos() map[string]decimal.Decimal {
	return c.specialCombos
}

func (c *slotConfig) Probabilities() map[string]float64 {
	return c.probabilities
}

func (c *slotConfig) Game() config.GameRules {
	return c.game
}

func (c *slotConfig) Balance() config.BalanceRules {
	return c.balance
}
