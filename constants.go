package main

// Game configuration constants
const (
	MaxAttempts = 6 // Maximum number of guesses per game
	WordLength  = 5 // Length of the word to guess
	MaxHints    = 3 // Maximum number of hints per game
)

// Guess status constants
const (
	GuessStatusCorrect = "correct"
	GuessStatusPresent = "present"
	GuessStatusAbsent  = "absent"
)

// Session status constants
const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusLost       = "lost"
)

// HintPlaceholder masks positions that are neither revealed nor hinted.
const HintPlaceholder = "▢"

// Player-facing rejection messages
const (
	ErrorGameOver      = "game is over"
	ErrorInvalidLength = "word must be 5 letters"
	ErrorNotAlphabetic = "word must contain only letters"
	ErrorNoHintsLeft   = "no hints left"
	ErrorNothingToHint = "nothing left to hint"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
