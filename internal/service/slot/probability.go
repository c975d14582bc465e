package slot

// Балансирующая политика: предикат по состоянию движка плюс построитель
// распределения. Политики проверяются строго по порядку, срабатывает первая
type policy struct {
	name  string
	match func(e *Engine) bool
	build func(e *Engine) map[string]float64
}

// balancingPolicies Лестница политик в порядке приоритета
func balancingPolicies() []policy {
	return []policy{
		{
			// Разовый большой приз на заранее выбранном спине
			name: "big_prize",
			match: func(e *Engine) bool {
				bal := e.cfg.Balance()
				return e.bigPrizeTurn > 0 &&
					e.totalSpins == e.bigPrizeTurn &&
					!e.bigPrizeAwarded &&
					containsInt(bal.BigPrizeBets, e.currentBet)
			},
			build: func(e *Engine) map[string]float64 {
				return e.cfg.Balance().BigPrizeProbs
			},
		},
		{
			// Бонусный коридор баланса при низкой ставке
			name: "premium_band",
			match: func(e *Engine) bool {
				bal := e.cfg.Balance()
				return e.credits >= bal.PremiumMinCredits &&
					e.credits <= bal.PremiumMaxCredits &&
					containsInt(bal.PremiumBets, e.currentBet)
			},
			build: func(e *Engine) map[string]float64 {
				return e.cfg.Balance().PremiumProbs
			},
		},
		{
			// Защита от разорения: дешёвые символы, гарантированная тройка
			name: "rescue",
			match: func(e *Engine) bool {
				return e.credits < e.cfg.Balance().RescueFloor &&
					e.consecutiveWins < e.maxConsecutiveWins
			},
			build: func(e *Engine) map[string]float64 {
				return e.cfg.Balance().RescueProbs
			},
		},
		{
			// Серия побед упёрлась в лимит
			name: "streak_cap",
			match: func(e *Engine) bool {
				return e.consecutiveWins >= e.maxConsecutiveWins
			},
			build: func(e *Engine) map[string]float64 {
				return e.cfg.Balance().StreakProbs
			},
		},
		{
			// Затухание при высоком балансе
			name: "damping",
			match: func(e *Engine) bool {
				return e.cfg.Balance().DampingStart > 0 &&
					e.credits > e.cfg.Balance().DampingStart
			},
			build: func(e *Engine) map[string]float64 {
				return e.dampedProbabilities()
			},
		},
		{
			// Базовое распределение без вмешательств
			name: "default",
			match: func(e *Engine) bool {
				return true
			},
			build: func(e *Engine) map[string]float64 {
				return e.cfg.Probabilities()
			},
		},
	}
}

// dynamicProbabilities Распределение символов для следующего розыгрыша.
// Чистая функция от снимка состояния: конфигурация не мутируется,
// результат всегда нормирован и строго положителен по каждому символу
func (e *Engine) dynamicProbabilities() map[string]float64 {
	for _, p := range balancingPolicies() {
		if p.match(e) {
			return e.normalize(p.build(e))
		}
	}
	// Недостижимо: последняя политика совпадает всегда
	return e.normalize(e.cfg.Probabilities())
}

// dampedProbabilities Масштабирует базовые веса фактором, линейно падающим
// от 1.0 на пороге до настроенного минимума. Снятая масса отдаётся самому
// частому символу: проигрыши смещаются к «все разные», а не подтасовываются
func (e *Engine) dampedProbabilities() map[string]float64 {
	bal := e.cfg.Balance()

	factor := 1 - float64(e.credits-bal.DampingStart)/float64(bal.DampingSpan)*(1-bal.DampingFloor)
	if factor < bal.DampingFloor {
		factor = bal.DampingFloor
	}

	probs := make(map[string]float64, len(e.cfg.Symbols()))
	for sym, p := range e.cfg.Probabilities() {
		probs[sym] = p * factor
	}
	probs[e.cfg.Symbols()[0]] += (1 - factor) * bal.DampingShift

	return probs
}

// normalize Возвращает новое распределение с суммой 1.
// Положительность суммы гарантирована валидацией конфигурации
func (e *Engine) normalize(probs map[string]float64) map[string]float64 {
	var total float64
	for _, sym := range e.cfg.Symbols() {
		total += probs[sym]
	}

	normalized := make(map[string]float64, len(probs))
	for _, sym := range e.cfg.Symbols() {
		normalized[sym] = probs[sym] / total
	}
	return normalized
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
