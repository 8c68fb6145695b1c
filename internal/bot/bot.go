// Package bot holds the computer opponents. Each strategy looks at a copy of the board and
// picks one free cell for the given mark.
package bot

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Strategy interface {
	ChooseCell(board entity.Board, mark string) (int, error)
}

// Rand is the source of randomness used by the easy and normal bots.
type Rand interface {
	IntN(n int) int
}

// NewRand - seeded source, a zero seed means "seed from the clock".
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint: gosec // not used for security
}

// NewStrategies - builds the bot for every difficulty level.
func NewStrategies(rng Rand) map[string]Strategy {
	return map[string]Strategy{
		entity.DifficultyEasy:   NewRandom(rng),
		entity.DifficultyNormal: NewHeuristic(rng),
		entity.DifficultyHard:   NewMinimax(),
	}
}

// checkPlayable - a bot must never be asked to move on a finished board.
func checkPlayable(board *entity.Board) error {
	if board.HasLine(entity.PlayerX) || board.HasLine(entity.PlayerO) {
		return fmt.Errorf("%w: board already has a winner", apperror.ErrIllegalState)
	}

	if board.IsFull() {
		return fmt.Errorf("%w: no empty cells", apperror.ErrIllegalState)
	}

	return nil
}
