package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const BoardSize = 9

// WinCombos - rows, columns and diagonals, in the order they are scanned.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [BoardSize]string

func InRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that *Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

func (that *Board) Get(cell int) string {
	return that[cell]
}

// Set - places mark into the cell. Callers must check the cell is empty first.
func (that *Board) Set(cell int, mark string) {
	that[cell] = mark
}

func (that *Board) Clear(cell int) {
	that[cell] = EmptyCell
}

// EmptyCells - returns the free cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// HasLine - reports whether mark occupies a whole row, column or diagonal.
func (that *Board) HasLine(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// OpponentOf - toggles between X and O.
func OpponentOf(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
