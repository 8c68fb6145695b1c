// Package tui is a terminal front-end for the engine. It only reads game snapshots and forwards
// key presses to the game manager.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type gameManager interface {
	PlayMove(ctx context.Context, gameID string, cell int) (*usecase.MoveResult, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, gameID, difficulty string) (*entity.Game, error)
	SwitchMode(ctx context.Context, gameID, mode string) (*entity.Game, error)
}

var difficultyKeys = map[string]string{
	"e": entity.DifficultyEasy,
	"n": entity.DifficultyNormal,
	"h": entity.DifficultyHard,
}

type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	game   *entity.Game
	cursor int
	notice string
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager, game *entity.Game) Model {
	return Model{
		ctx:     ctx,
		logger:  logger.With("component", "tui"),
		manager: manager,
		game:    game,
		cursor:  4,
	}
}

func (that Model) Game() *entity.Game {
	return that.game
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c", "q":
		return that, tea.Quit
	case "up":
		if that.cursor >= 3 {
			that.cursor -= 3
		}
	case "down":
		if that.cursor < 6 {
			that.cursor += 3
		}
	case "left":
		if that.cursor%3 > 0 {
			that.cursor--
		}
	case "right":
		if that.cursor%3 < 2 {
			that.cursor++
		}
	case "enter", " ", "space":
		return that.play(that.cursor), nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		cell := int(key[0] - '1')
		that.cursor = cell
		return that.play(cell), nil
	case "r":
		return that.apply(that.manager.ResetGame(that.ctx, that.game.ID)), nil
	case "m":
		mode := entity.ModePvAI
		if that.game.IsWithBot() {
			mode = entity.ModePvP
		}
		return that.apply(that.manager.SwitchMode(that.ctx, that.game.ID, mode)), nil
	case "e", "n", "h":
		return that.apply(that.manager.SetDifficulty(that.ctx, that.game.ID, difficultyKeys[key])), nil
	}

	return that, nil
}

func (that Model) play(cell int) Model {
	result, err := that.manager.PlayMove(that.ctx, that.game.ID, cell)
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		if result != nil {
			that.game = result.Game
		}
		that.notice = rejectionNotice(err)
	case err != nil:
		that.logger.Error("failed to play move", "error", err)
		that.notice = "Something went wrong: " + err.Error()
	default:
		that.game = result.Game
		that.notice = ""
	}

	return that
}

func (that Model) apply(game *entity.Game, err error) Model {
	if err != nil {
		that.logger.Error("failed to update game", "error", err)
		that.notice = "Something went wrong: " + err.Error()
		return that
	}

	that.game = game
	that.notice = ""

	return that
}

func rejectionNotice(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over, press r to play again."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for the computer to move."
	default:
		return "That move is not allowed."
	}
}

func (that Model) View() string {
	var view strings.Builder

	for row := range 3 {
		for col := range 3 {
			cell := row*3 + col
			view.WriteString(that.renderCell(cell))
			if col < 2 {
				view.WriteString("|")
			}
		}
		view.WriteString("\n")
		if row < 2 {
			view.WriteString("---+---+---\n")
		}
	}

	view.WriteString("\n")
	view.WriteString(that.game.StatusMessage())
	view.WriteString("\n")

	if that.notice != "" {
		view.WriteString(that.notice)
		view.WriteString("\n")
	}

	view.WriteString(that.settingsLine())
	view.WriteString("\n")
	view.WriteString("1-9/arrows+enter: play  r: reset  m: mode  e/n/h: difficulty  q: quit\n")

	return view.String()
}

func (that Model) renderCell(cell int) string {
	mark := that.game.Board.Get(cell)
	if mark == entity.EmptyCell {
		mark = " "
	}

	if cell == that.cursor {
		return "[" + mark + "]"
	}
	return " " + mark + " "
}

func (that Model) settingsLine() string {
	if !that.game.IsWithBot() {
		return "Mode: player vs player"
	}
	return fmt.Sprintf("Mode: player vs computer (%s)", that.game.Difficulty)
}
