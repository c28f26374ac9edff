package game

import "fmt"

// Move places inventory piece Piece, rotated Rotation quarter turns, with its anchor at (X, Y).
type Move struct {
	Piece    int
	Rotation int
	X        int
	Y        int
}

// PassMove is the explicit no-move signal. It never collides with a placement.
var PassMove = Move{Piece: -1, Rotation: -1, X: -1, Y: -1}

func (m Move) IsPass() bool {
	return m.Piece < 0
}

func (m Move) Anchor() Point {
	return Point{X: m.X, Y: m.Y}
}

// Cells returns the absolute cells covered by the move, or nil for a pass.
func (m Move) Cells(inv *Inventory) []Point {
	if m.IsPass() {
		return nil
	}
	return inv.Piece(m.Piece).Rotated(m.Rotation).Place(m.Anchor())
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("piece %d rotation %d at (%d, %d)", m.Piece, m.Rotation, m.X, m.Y)
}
