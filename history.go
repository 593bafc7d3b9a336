package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// partition holds one scope's per-player game lists, newest first. The
// playerOrder slice records first-seen order so that leaderboard tie
// breaking stays stable across restarts.
type partition struct {
	Players     map[string][]CompletedGame `json:"players"`
	PlayerOrder []string                   `json:"playerOrder"`
}

func newPartition() *partition {
	return &partition{Players: make(map[string][]CompletedGame)}
}

func (p *partition) add(playerID string, game CompletedGame) {
	if _, seen := p.Players[playerID]; !seen {
		p.PlayerOrder = append(p.PlayerOrder, playerID)
	}
	p.Players[playerID] = append([]CompletedGame{game}, p.Players[playerID]...)
}

// historyDocument is the durable layout: one partition per group plus a
// global partition that interleaves all groups.
type historyDocument struct {
	Groups map[string]*partition `json:"groups"`
	Global *partition            `json:"global"`
}

func emptyHistory() *historyDocument {
	return &historyDocument{
		Groups: make(map[string]*partition),
		Global: newPartition(),
	}
}

// HistoryStore is the append-only log of completed games. Every game is
// appended to both its group partition and the global partition, and every
// mutation rewrites the whole file under one lock; volume is small enough
// that the simplicity wins over throughput.
type HistoryStore struct {
	mu   sync.Mutex
	path string
	data *historyDocument
}

// loadHistoryStore reads the history file. A missing or corrupt file is
// downgraded to an empty document rather than treated as fatal.
func loadHistoryStore(path string) *HistoryStore {
	store := &HistoryStore{path: path, data: emptyHistory()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Failed to read history file %s: %v, starting empty", path, err)
		}
		return store
	}

	var doc historyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		logWarn("History file %s is corrupt, starting empty: %v", path, err)
		return store
	}

	if doc.Groups == nil {
		doc.Groups = make(map[string]*partition)
	}
	for id, p := range doc.Groups {
		if p == nil {
			doc.Groups[id] = newPartition()
		} else if p.Players == nil {
			p.Players = make(map[string][]CompletedGame)
		}
	}
	if doc.Global == nil {
		doc.Global = newPartition()
	} else if doc.Global.Players == nil {
		doc.Global.Players = make(map[string][]CompletedGame)
	}

	store.data = &doc
	logInfo("Loaded history from %s (%d groups)", path, len(doc.Groups))
	return store
}

// newGameID returns an 8-character uppercase id. Collisions are possible
// and not checked; the probability is negligible at this volume.
func newGameID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// AddGame records a finished session in the group and global partitions,
// then rewrites the file.
func (h *HistoryStore) AddGame(groupID string, session *GameSession, won bool) (CompletedGame, error) {
	game := CompletedGame{
		ID:              newGameID(),
		Timestamp:       time.Now(),
		Won:             won,
		Word:            session.SecretWord,
		Attempts:        len(session.Attempts),
		Hints:           session.HintsUsed,
		Guesses:         append([]GuessRecord(nil), session.Attempts...),
		DurationSeconds: session.Duration(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.data.Groups[groupID]
	if !ok {
		group = newPartition()
		h.data.Groups[groupID] = group
	}
	group.add(session.PlayerID, game)
	h.data.Global.add(session.PlayerID, game)

	err := h.saveLocked()
	if err == nil {
		logInfo("Recorded game %s for player %s (won: %v)", game.ID, session.PlayerID, won)
	}
	return game, err
}

// GetUserGames returns a player's completed games for the scope, newest
// first. The returned slice is a copy.
func (h *HistoryStore) GetUserGames(playerID string, scope Scope, groupID string) []CompletedGame {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.partitionFor(scope, groupID)
	if p == nil {
		return nil
	}
	return append([]CompletedGame(nil), p.Players[playerID]...)
}

// snapshot copies a partition's player lists and first-seen order for
// read-only aggregation.
func (h *HistoryStore) snapshot(scope Scope, groupID string) (map[string][]CompletedGame, []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.partitionFor(scope, groupID)
	if p == nil {
		return nil, nil
	}
	players := make(map[string][]CompletedGame, len(p.Players))
	for id, games := range p.Players {
		players[id] = append([]CompletedGame(nil), games...)
	}
	return players, append([]string(nil), p.PlayerOrder...)
}

// partitionFor returns the partition for a scope, or nil for an unknown
// group. Caller holds the lock.
func (h *HistoryStore) partitionFor(scope Scope, groupID string) *partition {
	if scope == ScopeGroup {
		return h.data.Groups[groupID]
	}
	return h.data.Global
}

func (h *HistoryStore) saveLocked() error {
	data, err := json.MarshalIndent(h.data, "", "  ")
	if err != nil {
		logWarn("Failed to marshal history: %v", err)
		return err
	}
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logWarn("Failed to create history directory %s: %v", dir, err)
			return err
		}
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		logWarn("Failed to write history file %s: %v", h.path, err)
		return err
	}
	return nil
}
