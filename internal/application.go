package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardgame-bot/internal/config"
	"github.com/rocketscienceinc/boardgame-bot/internal/qgomoku"
	"github.com/rocketscienceinc/boardgame-bot/internal/repository"
	"github.com/rocketscienceinc/boardgame-bot/internal/repository/storage"
	"github.com/rocketscienceinc/boardgame-bot/internal/service"
	"github.com/rocketscienceinc/boardgame-bot/internal/usecase"
	"github.com/rocketscienceinc/boardgame-bot/transport/discord"
	"github.com/rocketscienceinc/boardgame-bot/transport/rest"
)

var ErrTokenNotFound = errors.New("discord token is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Discord.Token == "" {
		return ErrTokenNotFound
	}

	session, err := discord.NewSession(conf.Discord.Token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}

	nameService, closeNames, err := newNameService(ctx, logger, conf, discord.NewUserLookup(session))
	if err != nil {
		return err
	}
	defer closeNames()

	matchRepo := repository.NewMatchRepository()
	arbiter := usecase.NewArbiter(logger, matchRepo, nameService, qgomoku.DefaultSource, !conf.Match.KeepSelectionAfterCommit)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(logger, arbiter)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Discord bot
	botErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting Discord bot", "guildID", conf.Discord.GuildID)
		bot := discord.New(logger, session, arbiter, conf.Discord.ApplicationID, conf.Discord.GuildID)
		if botErr := bot.Start(ctx); botErr != nil {
			log.Error("Discord bot error", "error", botErr)
			botErrCh <- botErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-botErrCh:
		return fmt.Errorf("discord bot error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newNameService - display names go through Redis when it is configured, straight to Discord otherwise.
func newNameService(ctx context.Context, logger *slog.Logger, conf *config.Config, lookup *discord.UserLookup) (service.NameService, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled() {
		log.Info("Redis is not configured, display names are not cached")
		return service.NewNameService(logger, lookup, nil), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	nameRepo := repository.NewNameRepository(redisStorage.Connection, conf.Redis.NameTTL)

	return service.NewNameService(logger, lookup, nameRepo), closeStorage, nil
}
