package apperror

import "errors"

var (
	// ErrInvalidMove - a recoverable rejection of a player's move, the game is left untouched.
	ErrInvalidMove = errors.New("invalid move")
	// ErrIllegalState - the engine asked for something that can never happen in a valid game.
	ErrIllegalState = errors.New("illegal state")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameNotFound = errors.New("game not found")
)
