package bot

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Random plays any free cell.
type Random struct {
	rng Rand
}

func NewRandom(rng Rand) *Random {
	return &Random{rng: rng}
}

func (that *Random) ChooseCell(board entity.Board, _ string) (int, error) {
	if err := checkPlayable(&board); err != nil {
		return 0, err
	}

	return that.pick(board.EmptyCells()), nil
}

func (that *Random) pick(cells []int) int {
	return cells[that.rng.IntN(len(cells))]
}
