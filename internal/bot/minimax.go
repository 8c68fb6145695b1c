package bot

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	noCell = -1
)

// Result of a full game tree search. Cell is the move to play, Score is its value for the
// searching mark and Nodes is the number of positions visited.
type Result struct {
	Cell  int
	Score int
	Nodes int
}

// Minimax searches the whole game tree. Scores are not adjusted by depth, so a slow win is
// worth as much as a fast one.
type Minimax struct{}

func NewMinimax() *Minimax {
	return &Minimax{}
}

func (that *Minimax) ChooseCell(board entity.Board, mark string) (int, error) {
	result, err := that.Search(board, mark)
	if err != nil {
		return 0, err
	}

	return result.Cell, nil
}

func (that *Minimax) Search(board entity.Board, mark string) (Result, error) {
	if err := checkPlayable(&board); err != nil {
		return Result{}, err
	}

	tree := &search{board: &board, self: mark}
	best := tree.run(mark)

	return Result{Cell: best.cell, Score: best.score, Nodes: tree.nodes}, nil
}

type move struct {
	cell  int
	score int
}

type search struct {
	board *entity.Board
	self  string
	nodes int
}

func (that *search) run(mover string) move {
	that.nodes++

	switch {
	case that.board.HasLine(entity.OpponentOf(that.self)):
		return move{cell: noCell, score: lossScore}
	case that.board.HasLine(that.self):
		return move{cell: noCell, score: winScore}
	}

	cells := that.board.EmptyCells()
	if len(cells) == 0 {
		return move{cell: noCell, score: drawScore}
	}

	maximizing := mover == that.self
	next := entity.OpponentOf(mover)

	best := move{cell: noCell}
	for _, cell := range cells {
		score := that.try(cell, mover, func() int {
			return that.run(next).score
		})

		// strict comparison keeps the lowest index among equal scores
		if best.cell == noCell || (maximizing && score > best.score) || (!maximizing && score < best.score) {
			best = move{cell: cell, score: score}
		}
	}

	return best
}

// try - holds mark on cell only while fn runs.
func (that *search) try(cell int, mark string, fn func() int) int {
	that.board.Set(cell, mark)
	defer that.board.Clear(cell)

	return fn()
}
