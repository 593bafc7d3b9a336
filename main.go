package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting wordle-dc in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	lexicon, err := loadLexicon(getEnv("WORDS_FILE", "data/words.json"))
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d words from dictionary", len(lexicon))

	history := loadHistoryStore(getEnv("HISTORY_FILE", "data/wordle_history.json"))
	channels := loadChannelConfig(getEnv("CONFIG_FILE", "data/channels.json"))

	app := &App{
		Lexicon:        lexicon,
		HintMap:        buildHintMap(lexicon),
		Registry:       newSessionRegistry(lexicon),
		History:        history,
		Stats:          newStatsEngine(history),
		Channels:       channels,
		LimiterMap:     make(map[string]*rate.Limiter),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		IsProduction:   isProduction,
		StartTime:      time.Now(),
	}

	startServer(app.newRouter())
}

// newRouter builds the gin engine with middleware and all API routes.
func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	router.Use(requestIDMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	limited := app.rateLimitMiddleware()

	api := router.Group("/api")
	{
		api.POST("/games", limited, app.startGameHandler)
		api.GET("/games/:player", app.gameStateHandler)
		api.POST("/games/:player/guess", limited, app.guessHandler)
		api.POST("/games/:player/hint", limited, app.hintHandler)
		api.POST("/games/:player/forfeit", limited, app.forfeitHandler)

		api.GET("/players/:player/history", app.historyHandler)
		api.GET("/players/:player/stats", app.playerStatsHandler)
		api.GET("/leaderboard", app.leaderboardHandler)
		api.GET("/recent", app.recentGamesHandler)

		api.PUT("/groups/:group/channel", limited, app.setChannelHandler)
		api.GET("/groups/:group/channel", app.getChannelHandler)
	}
	router.GET("/healthz", app.healthHandler)

	return router
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
