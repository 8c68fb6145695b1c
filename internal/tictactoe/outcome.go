package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome is the result of evaluating a board after a move.
type Outcome struct {
	Status Status `json:"status"`
	Winner string `json:"winner,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(mark string) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) String() string {
	if that.IsWon() {
		return "won(" + that.Winner + ")"
	}
	return string(that.Status)
}

// OutcomeOf - reads the outcome already recorded in the game.
func OutcomeOf(game *entity.Game) Outcome {
	switch {
	case game.IsFinished() && game.Winner == entity.PlayerTie:
		return Draw()
	case game.IsFinished():
		return Won(game.Winner)
	default:
		return Ongoing()
	}
}
