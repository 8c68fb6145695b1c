package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	MakeTurn(game *entity.Game, cell int) (tictactoe.Outcome, error)
	Reset(game *entity.Game)
}

// MoveResult is what a caller needs to redraw the game after a move.
type MoveResult struct {
	Outcome tictactoe.Outcome
	Board   entity.Board
	Message string
	Game    *entity.Game
}

type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	controller gameController
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		controller: controller,
	}
}

// NewGame - starts a game in the given mode. Difficulty is only used against the computer but is
// always validated so it can be switched on later.
func (that *GameManager) NewGame(ctx context.Context, mode, difficulty string) (*entity.Game, error) {
	mode, err := entity.ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	difficulty, err = entity.ParseDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), mode, difficulty)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game", game.ID, "mode", mode, "difficulty", difficulty)

	return game, nil
}

// PlayMove - plays cell for the current player. A rejected move returns the unchanged game
// together with an error wrapping apperror.ErrInvalidMove.
func (that *GameManager) PlayMove(ctx context.Context, gameID string, cell int) (*MoveResult, error) {
	log := that.logger.With("method", "PlayMove", "game", gameID, "cell", cell)

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	outcome, err := that.controller.MakeTurn(game, cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		log.Debug("move rejected", "error", err)

		return newMoveResult(game, outcome), fmt.Errorf("failed to make turn: %w", err)
	}

	if err != nil {
		log.Error("engine failed to make turn", "error", err)

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if !outcome.IsOngoing() {
		log.Info("game finished", "outcome", outcome.String())
	}

	return newMoveResult(game, outcome), nil
}

// ResetGame - clears the board, keeping mode, difficulty and names.
func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	that.controller.Reset(game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	return that.getGameByID(ctx, gameID)
}

// SetDifficulty - takes effect from the computer's next move, the board is left as it is.
func (that *GameManager) SetDifficulty(ctx context.Context, gameID, difficulty string) (*entity.Game, error) {
	difficulty, err := entity.ParseDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to set difficulty: %w", err)
	}

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Difficulty = difficulty

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// SwitchMode - changing mode always starts the game over.
func (that *GameManager) SwitchMode(ctx context.Context, gameID, mode string) (*entity.Game, error) {
	mode, err := entity.ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to switch mode: %w", err)
	}

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.SwitchMode(mode)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Info("game mode switched", "game", game.ID, "mode", mode)

	return game, nil
}

// SetPlayerNames - names shown in status messages. Against the computer the O name is fixed.
func (that *GameManager) SetPlayerNames(ctx context.Context, gameID, nameX, nameO string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.SetPlayerName(entity.PlayerX, nameX)
	if !game.IsWithBot() {
		game.SetPlayerName(entity.PlayerO, nameO)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// EndGame - forgets the game.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game", gameID)

	return nil
}

func newMoveResult(game *entity.Game, outcome tictactoe.Outcome) *MoveResult {
	return &MoveResult{
		Outcome: outcome,
		Board:   game.Board,
		Message: game.StatusMessage(),
		Game:    game,
	}
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
