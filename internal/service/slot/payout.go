package slot

import (
	"strings"

	"github.com/shopspring/decimal"
)

// calculateWinnings Считает выигрыш за комбинацию при текущей ставке.
// Порядок проверок: точная последовательность, тройка, пара, проигрыш.
// Множители дробные (пара вишен платит x1.2), поэтому считаем в decimal
// и усечением приводим к целым кредитам
func (e *Engine) calculateWinnings(combination []string) int {
	bet := decimal.NewFromInt(int64(e.currentBet))

	// Специальные комбинации сверяются с учётом порядка символов
	if mult, ok := e.cfg.SpecialCombos()[strings.Join(combination, "")]; ok {
		return int(bet.Mul(mult).IntPart())
	}

	// Три одинаковых — главный приз
	allMatch := true
	for _, sym := range combination {
		if sym != combination[0] {
			allMatch = false
			break
		}
	}
	if allMatch {
		return int(bet.Mul(e.cfg.Payouts()[combination[0]]).IntPart())
	}

	// Пара. Кандидат выбирается по каноническому порядку символов из
	// конфигурации, а не по порядку выпадения — это явное правило
	counts := make(map[string]int, len(combination))
	for _, sym := range combination {
		counts[sym]++
	}
	for _, sym := range e.cfg.Symbols() {
		if counts[sym] < 2 {
			continue
		}
		mult, ok := e.cfg.PairPayouts()[sym+sym]
		if !ok {
			// Пара без настроенного множителя не платит
			return 0
		}
		return int(bet.Mul(mult).IntPart())
	}

	return 0
}

// isJackpot Выигрыш дотянул до уровня самого редкого множителя
func (e *Engine) isJackpot(winnings int) bool {
	return winnings >= e.currentBet*e.cfg.Game().JackpotMultiplier
}
