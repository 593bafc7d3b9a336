package main

import (
	"strings"
	"time"
)

// GuessOutcome is the result of one SubmitGuess call. Game-rule violations
// are reported here as values, never as errors.
type GuessOutcome struct {
	Accepted  bool          `json:"accepted"`
	Rejection string        `json:"rejection,omitempty"`
	Result    []GuessResult `json:"result,omitempty"`
	Status    string        `json:"status"`
	Remaining int           `json:"remaining"`
}

// HintOutcome is the result of one RequestHint call.
type HintOutcome struct {
	Granted   bool   `json:"granted"`
	Rejection string `json:"rejection,omitempty"`
	Display   string `json:"display,omitempty"`
	HintsUsed int    `json:"hintsUsed"`
}

// GameSession is one player's in-progress game. It is owned by the
// SessionRegistry for the duration of play and mutated only through its
// methods, one player action at a time.
type GameSession struct {
	PlayerID      string
	GroupID       string
	SecretWord    string
	Attempts      []GuessRecord
	Remaining     int
	HintsUsed     int
	Revealed      [WordLength]bool
	HintedLetters map[byte]bool
	StartedAt     time.Time
	Status        string

	// pickIndex selects the hint position; injectable for deterministic tests.
	pickIndex func(n int) int
}

func newGameSession(playerID, groupID, secret string, pickIndex func(n int) int) *GameSession {
	return &GameSession{
		PlayerID:      playerID,
		GroupID:       groupID,
		SecretWord:    secret,
		Attempts:      []GuessRecord{},
		Remaining:     MaxAttempts,
		HintedLetters: make(map[byte]bool),
		StartedAt:     time.Now(),
		Status:        StatusInProgress,
		pickIndex:     pickIndex,
	}
}

// SubmitGuess evaluates one attempt. Malformed input is rejected without
// consuming an attempt; a terminal session rejects everything.
func (g *GameSession) SubmitGuess(input string) GuessOutcome {
	if g.Status != StatusInProgress {
		return GuessOutcome{Rejection: ErrorGameOver, Status: g.Status, Remaining: g.Remaining}
	}

	guess := normalizeGuess(input)
	if len(guess) != WordLength {
		return GuessOutcome{Rejection: ErrorInvalidLength, Status: g.Status, Remaining: g.Remaining}
	}
	if !isAlphabetic(guess) {
		return GuessOutcome{Rejection: ErrorNotAlphabetic, Status: g.Status, Remaining: g.Remaining}
	}

	result := checkGuess(guess, g.SecretWord)
	g.Attempts = append(g.Attempts, GuessRecord{Word: guess, Result: result})
	g.Remaining--
	for i, r := range result {
		if r.Status == GuessStatusCorrect {
			g.Revealed[i] = true
		}
	}

	switch {
	case guess == g.SecretWord:
		g.Status = StatusWon
		logInfo("Player %s won, target word was: %s", g.PlayerID, g.SecretWord)
	case g.Remaining == 0:
		g.Status = StatusLost
		logInfo("Player %s lost, target word was: %s", g.PlayerID, g.SecretWord)
	}

	return GuessOutcome{Accepted: true, Result: result, Status: g.Status, Remaining: g.Remaining}
}

// RequestHint discloses the letter at a randomly chosen position that is
// neither exact-revealed nor covered by an earlier hint. Exhausted budget
// or no hintable position leaves the session unchanged.
func (g *GameSession) RequestHint() HintOutcome {
	if g.Status != StatusInProgress {
		return HintOutcome{Rejection: ErrorGameOver, HintsUsed: g.HintsUsed}
	}
	if g.HintsUsed >= MaxHints {
		return HintOutcome{Rejection: ErrorNoHintsLeft, HintsUsed: g.HintsUsed}
	}

	var candidates []int
	for i := 0; i < WordLength; i++ {
		if !g.Revealed[i] && !g.HintedLetters[g.SecretWord[i]] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return HintOutcome{Rejection: ErrorNothingToHint, HintsUsed: g.HintsUsed}
	}

	pos := candidates[g.pickIndex(len(candidates))]
	g.HintedLetters[g.SecretWord[pos]] = true
	g.HintsUsed++
	logInfo("Player %s used hint %d/%d", g.PlayerID, g.HintsUsed, MaxHints)

	return HintOutcome{Granted: true, Display: g.HintDisplay(), HintsUsed: g.HintsUsed}
}

// Forfeit ends an in-progress game as a loss.
func (g *GameSession) Forfeit() {
	if g.Status != StatusInProgress {
		return
	}
	g.Status = StatusLost
	logInfo("Player %s forfeited, target word was: %s", g.PlayerID, g.SecretWord)
}

// HintDisplay renders the secret with revealed and hinted letters uppercase
// and a placeholder elsewhere. A hinted letter shows at every position it
// occupies; hints disclose letters, not positions.
func (g *GameSession) HintDisplay() string {
	parts := make([]string, WordLength)
	for i := 0; i < WordLength; i++ {
		ch := g.SecretWord[i]
		if g.Revealed[i] || g.HintedLetters[ch] {
			parts[i] = strings.ToUpper(string(ch))
		} else {
			parts[i] = HintPlaceholder
		}
	}
	return strings.Join(parts, " ")
}

// Duration returns the elapsed play time in seconds.
func (g *GameSession) Duration() float64 {
	return time.Since(g.StartedAt).Seconds()
}
