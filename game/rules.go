package game

import "fmt"

// StartingCorner is the cell a player's first piece has to cover.
func StartingCorner(player Seat, n int) Point {
	switch player {
	case 0:
		return Point{X: 0, Y: 0}
	case 1:
		return Point{X: n - 1, Y: 0}
	case 2:
		return Point{X: n - 1, Y: n - 1}
	case 3:
		return Point{X: 0, Y: n - 1}
	default:
		panic(fmt.Sprintf("unexpected seat %d", player))
	}
}

// CanPlace reports whether player may put the already rotated cells at anchor.
// Every cell must be on the board and empty, no cell may share an edge with
// the player's own cells, and the placement must cover the starting corner
// or touch one of the player's cells diagonally. Until the starting corner is
// taken only a placement covering it is legal.
func CanPlace(b *Board, player Seat, cells []Point, anchor Point) bool {
	for _, offset := range cells {
		p := anchor.Add(offset)
		if !b.InBounds(p) || b.cells[p.X*b.n+p.Y] != Empty {
			return false
		}
	}

	corner := StartingCorner(player, b.n)
	onCorner, touchesCorner := false, false
	for _, offset := range cells {
		p := anchor.Add(offset)
		for _, d := range orthogonal {
			if b.owns(p.Add(d), player) {
				return false
			}
		}
		if p == corner {
			onCorner = true
		}
		if !touchesCorner {
			for _, d := range diagonal {
				if b.owns(p.Add(d), player) {
					touchesCorner = true
					break
				}
			}
		}
	}

	if !b.owns(corner, player) {
		return onCorner
	}
	return onCorner || touchesCorner
}
