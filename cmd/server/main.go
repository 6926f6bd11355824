package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/clock"
	"github.com/KirkDiggler/heroparty/internal/common/uuid"
	"github.com/KirkDiggler/heroparty/internal/config"
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/events"
	"github.com/KirkDiggler/heroparty/internal/handlers/discord"
	"github.com/KirkDiggler/heroparty/internal/handlers/ws"
	gameRepo "github.com/KirkDiggler/heroparty/internal/repositories/game"
	"github.com/KirkDiggler/heroparty/internal/repositories/result"
	"github.com/KirkDiggler/heroparty/internal/services/broadcast"
	gameService "github.com/KirkDiggler/heroparty/internal/services/game"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	cards, err := loadCatalog(cfg.Game.CatalogPath)
	if err != nil {
		return err
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	resultRepo, err := result.NewRedis(&result.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return err
	}

	diceRoller := dice.New(&dice.Config{Seed: cfg.Game.DiceSeed})

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: diceRoller,
	})
	if err != nil {
		return err
	}

	hub, err := ws.NewHub(&ws.HubConfig{
		MessagingService: messagingSvc,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	notifiers := broadcast.Notifiers{hub}
	var announcers broadcast.Announcers

	if cfg.NATS.Enabled() {
		nc, err := events.Connect(cfg.NATS.URL, logger)
		if err != nil {
			return err
		}
		defer nc.Drain()

		publisher, err := events.New(&events.Config{
			Conn:          nc,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		})
		if err != nil {
			return err
		}
		notifiers = append(notifiers, publisher)
		announcers = append(announcers, publisher)
		logger.Info("publishing game events to nats", "url", cfg.NATS.URL)
	}

	var dg *discordgo.Session
	if cfg.Discord.Enabled() {
		dg, err = discord.NewSession(cfg.Discord.Token)
		if err != nil {
			return err
		}

		announcer, err := discord.NewAnnouncer(&discord.AnnouncerConfig{
			Sender:           dg,
			ChannelID:        cfg.Discord.ChannelID,
			MessagingService: messagingSvc,
		})
		if err != nil {
			return err
		}
		announcers = append(announcers, announcer)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxConcurrentGames: cfg.Game.MaxConcurrentGames,
		FinishedGameTTL:    cfg.Game.FinishedGameTTL,
		Rules:              cfg.Rules.SessionRules(),
		Catalog:            cards,
		GameRepo:           games,
		ResultRepo:         resultRepo,
		Notifier:           notifiers,
		Announcer:          announcers,
		Logger:             logger,
		DiceRoller:         diceRoller,
		Clock:              &clock.DefaultClock{},
		UUIDGenerator:      uuid.New(),
	})
	if err != nil {
		return err
	}
	defer gameSvc.Close()

	if dg != nil {
		bot, err := discord.New(&discord.Config{
			Session:          dg,
			ApplicationID:    cfg.Discord.ApplicationID,
			GuildID:          cfg.Discord.GuildID,
			PublicURL:        cfg.PublicURL,
			GameService:      gameSvc,
			MessagingService: messagingSvc,
			Logger:           logger,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				logger.Error("failed to stop discord bot", "error", err)
			}
		}()
	}

	handler, err := ws.New(&ws.Config{
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Hub:              hub,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler.Routes(),
		ReadTimeout: 30 * time.Second,
		// Websockets are long lived, so there is no write timeout
		IdleTimeout: 120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	stop()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	slog.Info("loading card catalog", "path", path)
	return catalog.LoadFile(path)
}
