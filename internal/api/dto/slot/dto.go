package slot

type NewSessionResponse struct {
	SessionID string        `json:"session_id"` // ID созданной сессии
	Stats     StatsResponse `json:"stats"`      // Стартовая статистика
}

type SetBetRequest struct {
	SessionID string `json:"session_id"`
	Bet       int    `json:"bet"` // Размер ставки (в границах min_bet..max_bet и не больше баланса)
}

type SpinRequest struct {
	SessionID string `json:"session_id"`
}

type SpinResponse struct {
	Combination     []string `json:"combination"`       // Символы барабанов
	Winnings        int      `json:"winnings"`          // Выигрыш за спин
	Bet             int      `json:"bet"`               // Ставка спина
	CreditsAfter    int      `json:"credits_after"`     // Баланс после
	IsWin           bool     `json:"is_win"`            // Был ли выигрыш
	IsJackpot       bool     `json:"is_jackpot"`        // Джекпот-класс
	ConsecutiveWins int      `json:"consecutive_wins"`  // Текущая серия побед
	BigPrizeAwarded bool     `json:"big_prize_awarded"` // Большой приз уже выдан
	GameComplete    bool     `json:"game_complete"`     // Достигнут потолок баланса
	SessionOver     bool     `json:"session_over"`      // Исчерпан бюджет спинов
	Terminal        bool     `json:"terminal"`          // Спины больше не принимаются
	SpinsRemaining  int      `json:"spins_remaining"`   // Остаток бюджета, -1 если выключен
	TotalSpins      int      `json:"total_spins"`       // Итог для отчёта по сессии
	TotalWins       int      `json:"total_wins"`        // Итог для отчёта по сессии
}

type StatsResponse struct {
	Credits        int    `json:"credits"`
	CurrentBet     int    `json:"current_bet"`
	TotalSpins     int    `json:"total_spins"`
	TotalWins      int    `json:"total_wins"`
	WinRate        string `json:"win_rate"` // Процент побед, один знак после запятой
	SpinsRemaining int    `json:"spins_remaining"`
	SessionActive  bool   `json:"session_active"`
	GameBlocked    bool   `json:"game_blocked"`
}

type CasinoStateResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalBet    float64 `json:"total_bet"`
	TotalPayout float64 `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
}
