package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// WordEntry is one playable word with its optional hint text.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// WordList represents the JSON structure for loading valid words
type WordList struct {
	Words []WordEntry `json:"words"`
}

// GuessResult represents a single letter's evaluation
type GuessResult struct {
	Letter string `json:"letter"`
	Status string `json:"status"` // "correct", "present", or "absent"
}

// GuessRecord is one evaluated attempt, immutable once produced.
type GuessRecord struct {
	Word   string        `json:"word"`
	Result []GuessResult `json:"result"`
}

// CompletedGame is the immutable record of a finished session, the unit of
// durable history.
type CompletedGame struct {
	ID              string        `json:"id"` // 8-char uppercase, not checked for uniqueness
	Timestamp       time.Time     `json:"timestamp"`
	Won             bool          `json:"won"`
	Word            string        `json:"word"`
	Attempts        int           `json:"attempts"`
	Hints           int           `json:"hints"`
	Guesses         []GuessRecord `json:"guesses"`
	DurationSeconds float64       `json:"duration"`
}

// Scope selects between a group-restricted and a global history query.
type Scope string

const (
	ScopeGroup  Scope = "group"
	ScopeGlobal Scope = "global"
)

// LeaderboardEntry is one ranked row of a scope's leaderboard.
type LeaderboardEntry struct {
	PlayerID    string  `json:"playerId"`
	Wins        int     `json:"wins"`
	TotalGames  int     `json:"totalGames"`
	WinRate     float64 `json:"winRate"`
	AvgAttempts float64 `json:"avgAttempts"`
}

// PlayerStats aggregates one player's completed games within a scope.
type PlayerStats struct {
	TotalGames    int     `json:"totalGames"`
	Wins          int     `json:"wins"`
	CurrentStreak int     `json:"currentStreak"`
	AvgAttempts   float64 `json:"avgAttempts"`
	AvgHints      float64 `json:"avgHints"`
	TotalDuration float64 `json:"totalDuration"`
}

// RecentGame pairs a completed game with its player for cross-player views.
type RecentGame struct {
	PlayerID string `json:"playerId"`
	CompletedGame
}

// App wires the core components together for the HTTP layer.
type App struct {
	Lexicon  []WordEntry
	HintMap  map[string]string
	Registry *SessionRegistry
	History  *HistoryStore
	Stats    *StatsEngine
	Channels *ChannelConfigStore

	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
	RateLimitRPS   int
	RateLimitBurst int

	IsProduction bool
	StartTime    time.Time
}
