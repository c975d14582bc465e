package slot

import (
	"math/rand"

	"slot_backend/internal/config"

	"github.com/shopspring/decimal"
)

// Конфигурация варианта игры для тестов, поля можно менять до создания движка
type stubConfig struct {
	symbols       []string
	payouts       map[string]decimal.Decimal
	pairPayouts   map[string]decimal.Decimal
	specialCombos map[string]decimal.Decimal
	probabilities map[string]float64
	game          config.GameRules
	balance       config.BalanceRules
}

func newStubConfig() *stubConfig {
	return &stubConfig{
		symbols: []string{"🍒", "🔔", "🍋", "⭐", "💎"},
		payouts: map[string]decimal.Decimal{
			"🍒": decimal.NewFromInt(2),
			"🔔": decimal.NewFromInt(3),
			"🍋": decimal.NewFromInt(4),
			"⭐": decimal.NewFromInt(7),
			"💎": decimal.NewFromInt(10),
		},
		pairPayouts: map[string]decimal.Decimal{
			"🍒🍒": decimal.NewFromFloat(1.2),
			"🔔🔔": decimal.NewFromFloat(1.5),
			"🍋🍋": decimal.NewFromInt(2),
			"⭐⭐": decimal.NewFromInt(3),
			"💎💎": decimal.NewFromInt(5),
		},
		specialCombos: map[string]decimal.Decimal{},
		probabilities: map[string]float64{
			"🍒": 0.50,
			"🔔": 0.35,
			"🍋": 0.12,
			"⭐": 0.025,
			"💎": 0.005,
		},
		game: config.GameRules{
			InitialCredits:    50000,
			MinBet:            1000,
			MaxBet:            5000,
			DefaultBet:        1000,
			Reels:             3,
			MaxCredits:        100000,
			JackpotMultiplier: 7,
		},
		balance: config.BalanceRules{
			BigPrizeWindow:   3,
			BigPrizeBets:     []int{3000, 4000},
			BigPrizeTopShare: 0.8,
			BigPrizeProbs: map[string]float64{
				"🍒": 0.02, "🔔": 0.02, "🍋": 0.01, "⭐": 0.35, "💎": 0.60,
			},
			PremiumMinCredits: 47000,
			PremiumMaxCredits: 56000,
			PremiumBets:       []int{1000, 2000},
			PremiumReelChance: 0.95,
			PremiumProbs: map[string]float64{
				"🍒": 0.05, "🔔": 0.05, "🍋": 0.05, "⭐": 0.45, "💎": 0.40,
			},
			RescueFloor: 40000,
			RescueProbs: map[string]float64{
				"🍒": 0.40, "🔔": 0.35, "🍋": 0.15, "⭐": 0.08, "💎": 0.02,
			},
			StreakCaps:       []int{5, 6, 7},
			StreakCapWeights: []float64{0.5, 0.25, 0.25},
			StreakProbs: map[string]float64{
				"🍒": 0.20, "🔔": 0.18, "🍋": 0.15, "⭐": 0.08, "💎": 0.04,
			},
			DampingStart: 97000,
			DampingSpan:  23000,
			DampingFloor: 0.5,
			DampingShift: 0.15,
		},
	}
}

func (c *stubConfig) Symbols() []string                         { return c.symbols }
func (c *stubConfig) Payouts() map[string]decimal.Decimal       { return c.payouts }
func (c *stubConfig) PairPayouts() map[string]decimal.Decimal   { return c.pairPayouts }
func (c *stubConfig) SpecialCombos() map[string]decimal.Decimal { return c.specialCombos }
func (c *stubConfig) Probabilities() map[string]float64         { return c.probabilities }
func (c *stubConfig) Game() config.GameRules                    { return c.game }
func (c *stubConfig) Balance() config.BalanceRules              { return c.balance }

func newTestEngine(cfg config.SlotConfig, seed int64) *Engine {
	return NewEngine(cfg, rand.New(rand.NewSource(seed)))
}
