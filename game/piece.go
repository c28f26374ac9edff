package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPiece      = errors.New("piece has no cells")
	ErrDuplicateOffset = errors.New("piece has duplicate offsets")
)

// Piece is an immutable polyomino template given as offsets from its anchor.
type Piece []Point

// NewPiece validates a piece template at load time.
func NewPiece(offsets ...Point) (Piece, error) {
	if len(offsets) == 0 {
		return nil, ErrEmptyPiece
	}
	seen := make(map[Point]struct{}, len(offsets))
	for _, offset := range offsets {
		if _, ok := seen[offset]; ok {
			return nil, fmt.Errorf("offset %v: %w", offset, ErrDuplicateOffset)
		}
		seen[offset] = struct{}{}
	}
	piece := make(Piece, len(offsets))
	copy(piece, offsets)
	return piece, nil
}

func (p Piece) Size() int {
	return len(p)
}

// Rotated returns a new piece turned by k quarter turns. The template is never modified.
func (p Piece) Rotated(k int) Piece {
	rotated := make(Piece, len(p))
	for i, offset := range p {
		rotated[i] = offset.Rotate(k)
	}
	return rotated
}

// Place translates the offsets to absolute cells for the given anchor.
func (p Piece) Place(anchor Point) []Point {
	cells := make([]Point, len(p))
	for i, offset := range p {
		cells[i] = anchor.Add(offset)
	}
	return cells
}

// StandardPieces returns the 21 classic polyominoes, one monomino to twelve pentominoes.
func StandardPieces() []Piece {
	shapes := [][]Point{
		{{0, 0}},
		{{0, 0}, {1, 0}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {-1, 1}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}},
	}

	pieces := make([]Piece, len(shapes))
	for i, shape := range shapes {
		piece, err := NewPiece(shape...)
		if err != nil {
			panic(fmt.Sprintf("invalid standard piece %d: %v", i, err))
		}
		pieces[i] = piece
	}
	return pieces
}
