package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	v1 "snapgram/cmd/api/router/v1"
	"snapgram/internal/auth"
	"snapgram/internal/client"
	"snapgram/internal/config"
	cacheadapter "snapgram/internal/infrastructure/cache/adapter"
	cacheport "snapgram/internal/infrastructure/cache/port"
	"snapgram/internal/infrastructure/database"
	queueadapter "snapgram/internal/infrastructure/queue/adapter"
	storeadapter "snapgram/internal/infrastructure/store/adapter"
	"snapgram/internal/pkg/messaging/application/task"
	messagingadapter "snapgram/internal/pkg/messaging/persistence/repository/adapter"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not found or could not be loaded")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Empty path: probe the default locations, none of which is required.
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	docStore, err := storeadapter.NewPgStore(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document store")
	}

	var cache cacheport.Cache
	if redisCache, err := cacheadapter.NewRedisCache(cfg.Redis.URL); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, falling back to in-process cache")
		cache = cacheadapter.NewMemoryCache()
	} else {
		cache = redisCache
	}
	defer cache.Close()
	queries := client.NewQueryCache(cache, cfg.QueryTTL())

	queueClient, err := queueadapter.NewAsynqClient(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue client")
	}
	defer queueClient.Close()

	queueServer, err := queueadapter.NewAsynqServer(cfg.Redis.URL, cfg.Queue.Concurrency)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue server")
	}
	task.RegisterSendMessageTask(
		queueServer,
		messagingadapter.NewDocMessageRepository(docStore),
		messagingadapter.NewDocConversationRepository(docStore),
	)

	authenticator := auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.TokenValidity())

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, authenticator, docStore, queueClient, queries)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: r}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := queueServer.Run(rootCtx); err != nil {
			log.Error().Err(err).Msg("queue server stopped")
		}
	}()

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := queueServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("queue shutdown failed")
	}
}
