package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/cli"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application with the given command line arguments.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, gameRepo, newRandomSource(conf))

	rootCmd := cli.NewRootCmd(gameManager, conf)
	rootCmd.SetArgs(args)
	rootCmd.SilenceErrors = true

	if err = rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL), redisStorage.Close, nil
}

func newRandomSource(conf *config.Config) random.Source {
	if conf.Seed != 0 {
		return random.NewSeeded(conf.Seed)
	}

	return random.NewCrypto()
}
