package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Баланс ниже порога защиты и серия не упёрлась в лимит:
// комбинация обязана быть тройкой с положительным выигрышем
func TestRescueSpinGuaranteesTriple(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := newTestEngine(newStubConfig(), seed)
		e.credits = 35000
		e.currentBet = 1000
		e.consecutiveWins = 0

		combination := e.spinReels()
		require.Len(t, combination, 3)
		require.Equal(t, combination[0], combination[1])
		require.Equal(t, combination[1], combination[2])
		require.Greater(t, e.calculateWinnings(combination), 0)
	}
}

// Серия упёрлась в лимит: ровно первые три символа конфигурации,
// выигрыш ровно ноль
func TestStreakCapForcesExactLoss(t *testing.T) {
	e := newTestEngine(newStubConfig(), 1)
	e.credits = 60000
	e.consecutiveWins = e.maxConsecutiveWins

	combination := e.spinReels()
	require.Equal(t, []string{"🍒", "🔔", "🍋"}, combination)
	require.Zero(t, e.calculateWinnings(combination))
}

// Спин большого приза — принудительная тройка одного из двух топ-символов,
// всегда уровня джекпота
func TestBigPrizeForcedCombination(t *testing.T) {
	var diamonds, stars int
	for seed := int64(1); seed <= 50; seed++ {
		e := newTestEngine(newStubConfig(), seed)
		e.totalSpins = e.bigPrizeTurn
		e.currentBet = 3000

		combination := e.spinReels()
		switch combination[0] {
		case "💎":
			diamonds++
			require.Equal(t, []string{"💎", "💎", "💎"}, combination)
		case "⭐":
			stars++
			require.Equal(t, []string{"⭐", "⭐", "⭐"}, combination)
		default:
			t.Fatalf("unexpected big prize combination %v", combination)
		}

		winnings := e.calculateWinnings(combination)
		require.True(t, e.isJackpot(winnings))
	}

	// Доля 0.8 на тройку топ-символа: на 50 сидах должны встретиться оба исхода
	assert.Greater(t, diamonds, stars)
	assert.Positive(t, stars)
}

// В бонусном коридоре подавляющее большинство символов — премиальные
func TestPremiumBandFavorsTopSymbols(t *testing.T) {
	e := newTestEngine(newStubConfig(), 3)
	e.credits = 50000
	e.currentBet = 1000

	var premium, total int
	for i := 0; i < 100; i++ {
		for _, sym := range e.spinReels() {
			total++
			if sym == "💎" || sym == "⭐" {
				premium++
			}
		}
	}

	require.Equal(t, 300, total)
	assert.Greater(t, float64(premium)/float64(total), 0.8)
}

// Обратная функция распределения: розыгрыш на границах и страховка
// от накопленной погрешности
func TestPickSymbol(t *testing.T) {
	symbols := []string{"a", "b", "c"}
	probs := map[string]float64{"a": 0.3, "b": 0.3, "c": 0.3} // сумма меньше 1

	assert.Equal(t, "a", pickSymbol(symbols, probs, 0))
	assert.Equal(t, "a", pickSymbol(symbols, probs, 0.3))
	assert.Equal(t, "b", pickSymbol(symbols, probs, 0.31))
	assert.Equal(t, "c", pickSymbol(symbols, probs, 0.89))
	// Сумма не дотянула до розыгрыша — берётся последний символ
	assert.Equal(t, "c", pickSymbol(symbols, probs, 0.99))
}

// Обычный розыгрыш примерно следует базовому распределению
func TestDefaultSamplingRoughlyMatchesBase(t *testing.T) {
	e := newTestEngine(newStubConfig(), 11)
	e.credits = 60000
	e.currentBet = 5000

	counts := make(map[string]int)
	const spins = 2000
	for i := 0; i < spins; i++ {
		for _, sym := range e.spinReels() {
			counts[sym]++
		}
	}

	total := float64(spins * 3)
	assert.InDelta(t, 0.50, float64(counts["🍒"])/total, 0.05)
	assert.InDelta(t, 0.35, float64(counts["🔔"])/total, 0.05)
	assert.Less(t, float64(counts["💎"])/total, 0.02)
}
