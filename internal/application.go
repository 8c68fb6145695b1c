package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameManager := NewGameManager(logger, conf)

	game, err := gameManager.NewGame(ctx, conf.Game.Mode, conf.Game.Difficulty)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	if game, err = gameManager.SetPlayerNames(ctx, game.ID, conf.Players.X, conf.Players.O); err != nil {
		return fmt.Errorf("could not set player names: %w", err)
	}

	log.Info("Starting terminal UI", "game", game.ID)

	program := tea.NewProgram(tui.New(ctx, logger, gameManager, game), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil && !isStopped(err) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	if err = gameManager.EndGame(context.WithoutCancel(ctx), game.ID); err != nil {
		log.Error("could not end game", "error", err)
	}

	log.Info("Application stopped")

	return nil
}

// isStopped - the program was stopped by a signal or by ctx rather than by a failure.
func isStopped(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)
}

// NewGameManager - wires the engine, the bots and the in-memory game store.
func NewGameManager(logger *slog.Logger, conf *config.Config) *usecase.GameManager {
	strategies := bot.NewStrategies(bot.NewRand(conf.Game.RandomSeed))
	gameController := tictactoe.NewGameController(logger, strategies)
	gameRepo := repository.NewGameRepository(storage.NewMemoryStorage())

	return usecase.NewGameManager(logger, gameRepo, gameController)
}
