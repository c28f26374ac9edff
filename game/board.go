package game

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of a board square: Empty, Crater or the seat of its owner.
type Cell int

const (
	Crater Cell = -2
	Empty  Cell = -1
)

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrCellOccupied = errors.New("cell is not empty")
	ErrInvalidCell  = errors.New("invalid cell value")
	ErrNotSquare    = errors.New("grid is not square")
)

func (c Cell) Valid() bool {
	return c == Crater || c == Empty || (c >= 0 && int(c) < NumPlayers)
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Crater:
		return "#"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}

// Board is an N×N grid stored row by row, indexed as [x][y].
type Board struct {
	n     int
	cells []Cell
}

func NewBoard(n int) *Board {
	if n <= 0 {
		panic(fmt.Sprintf("invalid board size %d", n))
	}
	cells := make([]Cell, n*n)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{n: n, cells: cells}
}

// BoardFromGrid builds a board from a grid[x][y] of raw cell values.
func BoardFromGrid(grid [][]int) (*Board, error) {
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrNotSquare)
	}
	b := NewBoard(n)
	for x, column := range grid {
		if len(column) != n {
			return nil, fmt.Errorf("column %d has %d cells, want %d: %w", x, len(column), n, ErrNotSquare)
		}
		for y, value := range column {
			cell := Cell(value)
			if !cell.Valid() {
				return nil, fmt.Errorf("cell (%d, %d) = %d: %w", x, y, value, ErrInvalidCell)
			}
			b.cells[x*n+y] = cell
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.n
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.n && p.Y >= 0 && p.Y < b.n
}

func (b *Board) Get(p Point) (Cell, error) {
	if !b.InBounds(p) {
		return Empty, fmt.Errorf("get %v on %dx%d board: %w", p, b.n, b.n, ErrOutOfBounds)
	}
	return b.cells[p.X*b.n+p.Y], nil
}

// At is Get for callers that already guarantee p is in bounds; it panics otherwise.
func (b *Board) At(p Point) Cell {
	cell, err := b.Get(p)
	if err != nil {
		panic(err)
	}
	return cell
}

// Set writes any valid cell value. Used for setting up craters, not for placements.
func (b *Board) Set(p Point, cell Cell) error {
	if !b.InBounds(p) {
		return fmt.Errorf("set %v on %dx%d board: %w", p, b.n, b.n, ErrOutOfBounds)
	}
	if !cell.Valid() {
		return fmt.Errorf("set %v to %d: %w", p, int(cell), ErrInvalidCell)
	}
	b.cells[p.X*b.n+p.Y] = cell
	return nil
}

// Apply writes player into every cell. All cells are checked before any is
// written, so a failed Apply leaves the grid untouched.
func (b *Board) Apply(player Seat, cells []Point) error {
	for _, p := range cells {
		cell, err := b.Get(p)
		if err != nil {
			return err
		}
		if cell != Empty {
			return fmt.Errorf("apply %v: %w", p, ErrCellOccupied)
		}
	}
	for _, p := range cells {
		b.cells[p.X*b.n+p.Y] = player.Cell()
	}
	return nil
}

// Undo resets cells written by the matching Apply. Calls must nest in stack order.
func (b *Board) Undo(cells []Point) {
	for _, p := range cells {
		if !b.InBounds(p) {
			panic(fmt.Errorf("undo %v: %w", p, ErrOutOfBounds))
		}
		b.cells[p.X*b.n+p.Y] = Empty
	}
}

// owns reports whether p is on the board and belongs to player.
func (b *Board) owns(p Point, player Seat) bool {
	return b.InBounds(p) && b.cells[p.X*b.n+p.Y] == player.Cell()
}

func (b *Board) Count(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if b.n != other.n {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Grid returns the raw grid[x][y] values.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.n)
	for x := range grid {
		grid[x] = make([]int, b.n)
		for y := range grid[x] {
			grid[x][y] = int(b.cells[x*b.n+y])
		}
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			sb.WriteString(b.cells[x*b.n+y].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
