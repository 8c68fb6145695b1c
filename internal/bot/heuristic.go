package bot

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Heuristic wins when it can, blocks when it must and plays randomly otherwise.
type Heuristic struct {
	random *Random
}

func NewHeuristic(rng Rand) *Heuristic {
	return &Heuristic{random: NewRandom(rng)}
}

func (that *Heuristic) ChooseCell(board entity.Board, mark string) (int, error) {
	if err := checkPlayable(&board); err != nil {
		return 0, err
	}

	if cell, ok := completingCell(&board, mark); ok {
		return cell, nil
	}

	if cell, ok := completingCell(&board, entity.OpponentOf(mark)); ok {
		return cell, nil
	}

	return that.random.pick(board.EmptyCells()), nil
}

// completingCell - the first free cell that would give mark a full line. Combos are scanned in
// declared order and inside a combo the free slot is looked for from the last position back.
func completingCell(board *entity.Board, mark string) (int, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := combo[0], combo[1], combo[2]

		switch {
		case board.Get(a) == mark && board.Get(b) == mark && board.IsEmpty(c):
			return c, true
		case board.Get(a) == mark && board.IsEmpty(b) && board.Get(c) == mark:
			return b, true
		case board.IsEmpty(a) && board.Get(b) == mark && board.Get(c) == mark:
			return a, true
		}
	}

	return 0, false
}
