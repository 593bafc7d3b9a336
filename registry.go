package main

import (
	"crypto/rand"
	"errors"
	"math/big"
	mathrand "math/rand"
	"sync"
)

// ErrAlreadyActive is returned when a player who already has an active game
// tries to start another one.
var ErrAlreadyActive = errors.New("player already has an active game")

// SessionRegistry owns the player to active-session map and enforces at
// most one active game per player. It is purely in-memory; a restart
// discards in-progress games and only completed games are durable.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*GameSession
	lexicon  []WordEntry

	// pickIndex is handed to new sessions for hint selection; injectable
	// for deterministic tests.
	pickIndex func(n int) int
}

func newSessionRegistry(lexicon []WordEntry) *SessionRegistry {
	return &SessionRegistry{
		sessions:  make(map[string]*GameSession),
		lexicon:   lexicon,
		pickIndex: mathrand.Intn,
	}
}

// Start creates a session for the player with a fresh secret word, or
// reports ErrAlreadyActive without touching the existing session.
func (r *SessionRegistry) Start(playerID, groupID string) (*GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[playerID]; exists {
		return nil, ErrAlreadyActive
	}
	session := newGameSession(playerID, groupID, r.randomWord(), r.pickIndex)
	r.sessions[playerID] = session
	logInfo("New game started for player %s (group: %s)", playerID, groupID)
	return session, nil
}

// Get returns the player's active session, if any.
func (r *SessionRegistry) Get(playerID string) (*GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[playerID]
	return session, ok
}

// End removes and returns the player's session. Called exactly once when a
// session reaches a terminal state.
func (r *SessionRegistry) End(playerID string) (*GameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[playerID]
	if ok {
		delete(r.sessions, playerID)
	}
	return session, ok
}

// randomWord picks a secret uniformly from the lexicon.
func (r *SessionRegistry) randomWord() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(r.lexicon))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return r.lexicon[0].Word
	}
	return r.lexicon[n.Int64()].Word
}
