package model

// Engine Движок одной игровой сессии.
// Отклонённые операции сигнализируются возвратом false/nil, без ошибок
type Engine interface {
	SetBet(amount int) bool
	ExecuteSpin() *SpinResult
	Stats() Stats
}

// SpinResult Итог одного принятого спина
type SpinResult struct {
	Combination     []string
	Winnings        int
	Bet             int
	CreditsAfter    int
	IsWin           bool
	IsJackpot       bool
	ConsecutiveWins int
	BigPrizeAwarded bool

	// Терминальные признаки сессии
	GameComplete   bool // достигнут потолок баланса
	SessionOver    bool // исчерпан бюджет спинов
	Terminal       bool // дальнейшие спины не принимаются
	SpinsRemaining int  // -1, если бюджет спинов выключен

	// Итоги для отчёта по завершении сессии
	TotalSpins int
	TotalWins  int
}

// Stats Текущая статистика игрока
type Stats struct {
	Credits        int
	CurrentBet     int
	TotalSpins     int
	TotalWins      int
	WinRate        string // процент побед с одним знаком после запятой
	SpinsRemaining int
	SessionActive  bool
	GameBlocked    bool
}

// SessionInfo Описание созданной сессии
type SessionInfo struct {
	SessionID string
	Stats     Stats
}
