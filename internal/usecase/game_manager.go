package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs stored game sessions: every call restores the engine
// from the session snapshot, applies one operation and saves the result.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	rnd      random.Source
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, rnd random.Source) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		rnd:      rnd,
	}
}

func (that *GameManager) NewGame(ctx context.Context, size int) (*entity.Snapshot, error) {
	engine, err := tictactoe.NewGame(that.logger, size, that.rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := engine.Snapshot(pkg.GenerateGameID())
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "game_id", game.ID, "size", size, "turn", game.Turn)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Snapshot, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the current mark at (row, col). A rejected move returns the
// unchanged game together with the error and nothing is saved.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Snapshot, error) {
	stored, engine, err := that.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err = engine.ApplyMove(row, col); err != nil {
		return stored, fmt.Errorf("failed make turn: %w", err)
	}

	game := engine.Snapshot(id)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", id, "status", game.Status.String(), "moves", game.Moves)
	}

	return game, nil
}

// ResetGame clears the board of a session and picks a new starting mark. Valid in any state.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Snapshot, error) {
	_, engine, err := that.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	engine.Reset()

	game := engine.Snapshot(id)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game reset", "game_id", id, "turn", game.Turn)

	return game, nil
}

// AbandonGame removes the session.
func (that *GameManager) AbandonGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game abandoned", "game_id", id)

	return nil
}

func (that *GameManager) restore(ctx context.Context, id string) (*entity.Snapshot, *tictactoe.Engine, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	engine, err := tictactoe.Restore(that.logger, game, that.rnd)
	if err != nil {
		that.logger.Error("stored game is corrupt", "game_id", id, "error", err)
		return nil, nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return game, engine, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Snapshot) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		that.logger.Error("failed to save game", "game_id", game.ID, "error", err)
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
