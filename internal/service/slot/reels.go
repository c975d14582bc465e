package slot

// activePolicyName Имя сработавшей балансирующей политики.
// Генератор барабанов ветвится по тем же условиям, что и селектор
// вероятностей, но отличается формой результата, а не только весами
func (e *Engine) activePolicyName() string {
	for _, p := range balancingPolicies() {
		if p.match(e) {
			return p.name
		}
	}
	return "default"
}

// spinReels Разыгрывает комбинацию из трёх символов для текущего спина
func (e *Engine) spinReels() []string {
	symbols := e.cfg.Symbols()
	probs := e.dynamicProbabilities()
	bal := e.cfg.Balance()

	switch e.activePolicyName() {
	case "big_prize":
		// Принудительная тройка одного из двух топ-символов
		top, second := e.topSymbols()
		if e.rng.Float64() < bal.BigPrizeTopShare {
			return []string{top, top, top}
		}
		return []string{second, second, second}

	case "premium_band":
		// На каждом барабане с высокой вероятностью премиум-символ,
		// остаток уходит в обычный взвешенный розыгрыш
		top, second := e.topSymbols()
		result := make([]string, 0, e.cfg.Game().Reels)
		for i := 0; i < e.cfg.Game().Reels; i++ {
			if e.rng.Float64() < bal.PremiumReelChance {
				if e.rng.Float64() < 0.5 {
					result = append(result, top)
				} else {
					result = append(result, second)
				}
				continue
			}
			result = append(result, pickSymbol(symbols, probs, e.rng.Float64()))
		}
		return result

	case "rescue":
		// Один символ по распределению, повторённый трижды:
		// гарантированная тройка, размер выигрыша зависит от символа
		winner := pickSymbol(symbols, probs, e.rng.Float64())
		return []string{winner, winner, winner}

	case "streak_cap":
		// Три заведомо разных символа — гарантированный проигрыш
		return []string{symbols[0], symbols[1], symbols[2]}

	default:
		// Независимый взвешенный розыгрыш каждого барабана
		result := make([]string, 0, e.cfg.Game().Reels)
		for i := 0; i < e.cfg.Game().Reels; i++ {
			result = append(result, pickSymbol(symbols, probs, e.rng.Float64()))
		}
		return result
	}
}

// pickSymbol Выбор символа обратной функцией распределения: идём по символам
// в порядке конфигурации, накапливая сумму, и берём первый символ, на котором
// сумма достигла розыгрыша. Если из-за накопленной погрешности сумма не
// дотянула до 1 — возвращается последний символ
func pickSymbol(symbols []string, probs map[string]float64, r float64) string {
	cum := 0.0
	for _, sym := range symbols {
		cum += probs[sym]
		if cum >= r {
			return sym
		}
	}
	return symbols[len(symbols)-1]
}
