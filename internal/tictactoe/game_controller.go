package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

type GameController struct {
	logger     *slog.Logger
	strategies map[string]bot.Strategy
}

func NewGameController(logger *slog.Logger, strategies map[string]bot.Strategy) *GameController {
	return &GameController{
		logger:     logger.With("component", "game_controller"),
		strategies: strategies,
	}
}

// MakeTurn - plays the current player's mark into cell and, when the game is against the
// computer and it is now O's turn, lets the bot answer with exactly one move. When the bot
// fails the game is restored to how it was before the call.
func (that *GameController) MakeTurn(game *entity.Game, cell int) (Outcome, error) {
	if game.IsBotTurn() {
		return OutcomeOf(game), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrNotYourTurn)
	}

	before := *game

	outcome, err := that.ApplyMove(game, cell)
	if err != nil {
		return outcome, err
	}

	if !outcome.IsOngoing() || !game.IsBotTurn() {
		return outcome, nil
	}

	outcome, err = that.botTurn(game)
	if err != nil {
		*game = before
		return OutcomeOf(game), err
	}

	return outcome, nil
}

// ApplyMove - places the mark of the player whose turn it is. A rejected move leaves the game
// untouched.
func (that *GameController) ApplyMove(game *entity.Game, cell int) (Outcome, error) {
	if err := validateMove(game, cell); err != nil {
		return OutcomeOf(game), fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	mover := game.Turn
	game.Board.Set(cell, mover)

	outcome := Evaluate(game.Board, mover)
	updateGameStatus(game, outcome)

	return outcome, nil
}

// Reset - clears the board and hands the first move back to X.
func (that *GameController) Reset(game *entity.Game) {
	game.Reset()

	that.logger.Debug("game reset", "game", game.ID)
}

// Evaluate - a line for the player who just moved beats a full board.
func Evaluate(board entity.Board, mover string) Outcome {
	if board.HasLine(mover) {
		return Won(mover)
	}

	if board.IsFull() {
		return Draw()
	}

	return Ongoing()
}

func (that *GameController) botTurn(game *entity.Game) (Outcome, error) {
	log := that.logger.With("method", "botTurn", "game", game.ID, "difficulty", game.Difficulty)

	strategy, ok := that.strategies[game.Difficulty]
	if !ok {
		return OutcomeOf(game), fmt.Errorf("%w: %w", apperror.ErrIllegalState, entity.ErrUnknownDifficulty)
	}

	cell, err := strategy.ChooseCell(game.Board, entity.BotMark)
	if err != nil {
		if !errors.Is(err, apperror.ErrIllegalState) {
			err = fmt.Errorf("%w: %w", apperror.ErrIllegalState, err)
		}

		return OutcomeOf(game), fmt.Errorf("bot failed to choose cell: %w", err)
	}

	if err = validateMove(game, cell); err != nil {
		return OutcomeOf(game), fmt.Errorf("%w: bot chose cell %d: %w", apperror.ErrIllegalState, cell, err)
	}

	outcome, err := that.ApplyMove(game, cell)
	if err != nil {
		return outcome, fmt.Errorf("%w: %w", apperror.ErrIllegalState, err)
	}

	log.Debug("bot made turn", "cell", cell, "outcome", outcome.String())

	return outcome, nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	if !game.IsActive() {
		return apperror.ErrGameFinished
	}

	if !entity.InRange(cell) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if !game.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - finishes the game or passes the turn.
func updateGameStatus(game *entity.Game, outcome Outcome) {
	switch outcome.Status {
	case StatusWon:
		game.Finish(outcome.Winner)
	case StatusDraw:
		game.Finish(entity.PlayerTie)
	case StatusOngoing:
		game.Turn = entity.OpponentOf(game.Turn)
	}
}
