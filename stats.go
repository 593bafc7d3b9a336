package main

import (
	"sort"

	"github.com/samber/lo"
)

// StatsEngine derives leaderboard and aggregate views from the history
// store. Nothing is cached; every query recomputes from current data.
type StatsEngine struct {
	history *HistoryStore
}

func newStatsEngine(history *HistoryStore) *StatsEngine {
	return &StatsEngine{history: history}
}

// Leaderboard ranks a scope's players by wins, then win rate. Further ties
// keep the players' first-seen order in the underlying history.
func (s *StatsEngine) Leaderboard(scope Scope, groupID string) []LeaderboardEntry {
	players, order := s.history.snapshot(scope, groupID)

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, playerID := range order {
		games := players[playerID]
		if len(games) == 0 {
			continue
		}
		wins := lo.CountBy(games, func(g CompletedGame) bool { return g.Won })
		attempts := lo.SumBy(games, func(g CompletedGame) int { return g.Attempts })
		total := len(games)
		entries = append(entries, LeaderboardEntry{
			PlayerID:    playerID,
			Wins:        wins,
			TotalGames:  total,
			WinRate:     float64(wins) / float64(total),
			AvgAttempts: float64(attempts) / float64(total),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].WinRate > entries[j].WinRate
	})
	return entries
}

// PlayerStats aggregates one player's games within a scope. CurrentStreak
// counts consecutive wins from the most recent game until the first loss.
func (s *StatsEngine) PlayerStats(playerID string, scope Scope, groupID string) PlayerStats {
	games := s.history.GetUserGames(playerID, scope, groupID)
	stats := PlayerStats{TotalGames: len(games)}
	if len(games) == 0 {
		return stats
	}

	stats.Wins = lo.CountBy(games, func(g CompletedGame) bool { return g.Won })
	for _, g := range games {
		if !g.Won {
			break
		}
		stats.CurrentStreak++
	}

	total := float64(len(games))
	stats.AvgAttempts = float64(lo.SumBy(games, func(g CompletedGame) int { return g.Attempts })) / total
	stats.AvgHints = float64(lo.SumBy(games, func(g CompletedGame) int { return g.Hints })) / total
	stats.TotalDuration = lo.SumBy(games, func(g CompletedGame) float64 { return g.DurationSeconds })
	return stats
}

// RecentGames returns the newest completed games across all players of a
// scope, up to limit.
func (s *StatsEngine) RecentGames(scope Scope, groupID string, limit int) []RecentGame {
	players, order := s.history.snapshot(scope, groupID)

	var all []RecentGame
	for _, playerID := range order {
		for _, g := range players[playerID] {
			all = append(all, RecentGame{PlayerID: playerID, CompletedGame: g})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}
