package game

// LegalMoves enumerates every legal placement for player. Larger pieces come
// first, then rotation 0 to 3, then anchors by x and then y. An empty result
// means the player has to pass.
func LegalMoves(b *Board, player Seat, inv *Inventory) []Move {
	return LegalMovesInto(nil, b, player, inv)
}

// LegalMovesInto appends the legal moves to buf[:0].
func LegalMovesInto(buf []Move, b *Board, player Seat, inv *Inventory) []Move {
	moves := buf[:0]
	visit(b, player, inv, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

func HasLegalMove(b *Board, player Seat, inv *Inventory) bool {
	found := false
	visit(b, player, inv, func(Move) bool {
		found = true
		return false
	})
	return found
}

// visit calls yield for each legal move in enumeration order until yield returns false.
func visit(b *Board, player Seat, inv *Inventory, yield func(Move) bool) {
	for _, index := range inv.Order() {
		piece := inv.Piece(index)
		for r := 0; r < 4; r++ {
			rotated := piece.Rotated(r)
			for x := 0; x < b.n; x++ {
				for y := 0; y < b.n; y++ {
					if !CanPlace(b, player, rotated, Point{X: x, Y: y}) {
						continue
					}
					if !yield(Move{Piece: index, Rotation: r, X: x, Y: y}) {
						return
					}
				}
			}
		}
	}
}
