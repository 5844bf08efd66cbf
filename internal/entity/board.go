package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gobblet/internal/apperror"
)

const BoardSize = 3

// Point addresses a cell: X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Point) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}

// Lines are the 8 winning triples: rows, columns, then diagonals.
var Lines = [8][3]Point{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Snapshot is a read-only copy of the board indexed [y][x], each stack bottom first.
type Snapshot [BoardSize][BoardSize][]Token

// Board is the 3x3 grid, indexed [y][x].
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) IsInBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// CellAt gives direct access to a cell so rules can compose on it.
func (that *Board) CellAt(x, y int) (*Cell, error) {
	if !that.IsInBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, x, y)
	}

	return &that.cells[y][x], nil
}

// Winner scans the exposed tokens of every line. It never mutates the board.
func (that *Board) Winner() (Color, bool) {
	for _, line := range Lines {
		if color, ok := that.lineOwner(line); ok {
			return color, true
		}
	}

	return NoColor, false
}

func (that *Board) lineOwner(line [3]Point) (Color, bool) {
	first, ok := that.cells[line[0].Y][line[0].X].Top()
	if !ok {
		return NoColor, false
	}

	for _, p := range line[1:] {
		top, ok := that.cells[p.Y][p.X].Top()
		if !ok || top.Color != first.Color {
			return NoColor, false
		}
	}

	return first.Color, true
}

// RelocateTop lifts the exposed token at (x,y), the first half of a board move.
func (that *Board) RelocateTop(x, y int) (Token, error) {
	cell, err := that.CellAt(x, y)
	if err != nil {
		return Token{}, err
	}

	token, ok := cell.PopTop()
	if !ok {
		return Token{}, fmt.Errorf("%w: (%d,%d)", apperror.ErrEmptyCell, x, y)
	}

	return token, nil
}

func (that *Board) Snapshot() Snapshot {
	var snapshot Snapshot

	for y := range BoardSize {
		for x := range BoardSize {
			snapshot[y][x] = that.cells[y][x].Tokens()
		}
	}

	return snapshot
}
