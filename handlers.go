package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// sessionView renders a session for the player. The secret word and its
// clue text are exposed only once the game is over.
func (app *App) sessionView(g *GameSession) gin.H {
	view := gin.H{
		"playerId":  g.PlayerID,
		"groupId":   g.GroupID,
		"status":    g.Status,
		"attempts":  g.Attempts,
		"remaining": g.Remaining,
		"hintsUsed": g.HintsUsed,
		"hint":      g.HintDisplay(),
	}
	if g.Status != StatusInProgress {
		view["word"] = g.SecretWord
		view["clue"] = app.HintMap[g.SecretWord]
	}
	return view
}

// startGameHandler starts a new game for a player.
func (app *App) startGameHandler(c *gin.Context) {
	var req struct {
		PlayerID string `json:"playerId"`
		GroupID  string `json:"groupId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PlayerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerId is required"})
		return
	}

	session, err := app.Registry.Start(req.PlayerID, req.GroupID)
	if errors.Is(err, ErrAlreadyActive) {
		c.JSON(http.StatusConflict, gin.H{"error": ErrAlreadyActive.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.sessionView(session))
}

// gameStateHandler returns the player's current session view.
func (app *App) gameStateHandler(c *gin.Context) {
	session, ok := app.Registry.Get(c.Param("player"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active game"})
		return
	}
	c.JSON(http.StatusOK, app.sessionView(session))
}

// guessHandler submits one attempt. Rule violations come back as ordinary
// outcome values; a terminal state ends the session and records history.
func (app *App) guessHandler(c *gin.Context) {
	playerID := c.Param("player")
	var req struct {
		Word string `json:"word"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	session, ok := app.Registry.Get(playerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active game"})
		return
	}

	outcome := session.SubmitGuess(req.Word)
	if outcome.Accepted && outcome.Status != StatusInProgress {
		app.finishGame(session)
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"session": app.sessionView(session),
	})
}

// hintHandler reveals one letter of the secret word, budget permitting.
func (app *App) hintHandler(c *gin.Context) {
	session, ok := app.Registry.Get(c.Param("player"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active game"})
		return
	}
	c.JSON(http.StatusOK, session.RequestHint())
}

// forfeitHandler ends the player's game as a loss and records it.
func (app *App) forfeitHandler(c *gin.Context) {
	session, ok := app.Registry.Get(c.Param("player"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active game"})
		return
	}
	session.Forfeit()
	app.finishGame(session)
	c.JSON(http.StatusOK, app.sessionView(session))
}

// finishGame evicts a terminal session from the registry and appends it to
// durable history.
func (app *App) finishGame(session *GameSession) {
	ended, ok := app.Registry.End(session.PlayerID)
	if !ok {
		return
	}
	if _, err := app.History.AddGame(ended.GroupID, ended, ended.Status == StatusWon); err != nil {
		logWarn("Failed to persist game for player %s: %v", ended.PlayerID, err)
	}
}

// historyHandler serves one completed game per page, newest first. The page
// index is clamped so a shrinking list never faults.
func (app *App) historyHandler(c *gin.Context) {
	playerID := c.Param("player")
	scope, groupID := parseScope(c)
	games := app.History.GetUserGames(playerID, scope, groupID)

	totalPages := max(len(games), 1)
	page := 0
	if v := c.Query("page"); v != "" {
		if p, err := parseInt(v); err == nil {
			page = p
		}
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	resp := gin.H{
		"playerId":   playerID,
		"scope":      scope,
		"page":       page,
		"totalPages": totalPages,
		"totalGames": len(games),
	}
	if len(games) > 0 {
		game := games[page]
		resp["game"] = game
		resp["durationDisplay"] = formatDuration(game.DurationSeconds)
	}
	c.JSON(http.StatusOK, resp)
}

// playerStatsHandler serves a player's aggregate statistics.
func (app *App) playerStatsHandler(c *gin.Context) {
	scope, groupID := parseScope(c)
	stats := app.Stats.PlayerStats(c.Param("player"), scope, groupID)
	c.JSON(http.StatusOK, gin.H{
		"playerId":             c.Param("player"),
		"scope":                scope,
		"stats":                stats,
		"totalDurationDisplay": formatDuration(stats.TotalDuration),
	})
}

// leaderboardHandler serves a scope's ranking.
func (app *App) leaderboardHandler(c *gin.Context) {
	scope, groupID := parseScope(c)
	c.JSON(http.StatusOK, gin.H{
		"scope":       scope,
		"leaderboard": app.Stats.Leaderboard(scope, groupID),
	})
}

const recentGamesLimit = 10

// recentGamesHandler serves the newest completed games across players.
func (app *App) recentGamesHandler(c *gin.Context) {
	scope, groupID := parseScope(c)
	c.JSON(http.StatusOK, gin.H{
		"scope":  scope,
		"recent": app.Stats.RecentGames(scope, groupID, recentGamesLimit),
	})
}

// setChannelHandler designates a group's output channel.
func (app *App) setChannelHandler(c *gin.Context) {
	var req struct {
		ChannelID string `json:"channelId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ChannelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channelId is required"})
		return
	}
	if err := app.Channels.Set(c.Param("group"), req.ChannelID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save channel config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": c.Param("group"), "channelId": req.ChannelID})
}

// getChannelHandler returns a group's designated channel.
func (app *App) getChannelHandler(c *gin.Context) {
	channelID, ok := app.Channels.Get(c.Param("group"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no channel configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groupId": c.Param("group"), "channelId": channelID})
}

// healthHandler reports process health and word pool size.
func (app *App) healthHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.Lexicon),
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// parseScope maps query params to a scope, defaulting to global. A group
// scope without a group id falls back to global.
func parseScope(c *gin.Context) (Scope, string) {
	groupID := c.Query("group")
	if Scope(c.Query("scope")) == ScopeGroup && groupID != "" {
		return ScopeGroup, groupID
	}
	return ScopeGlobal, ""
}
