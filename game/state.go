package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRotation  = errors.New("rotation must be in 0..3")
	ErrIllegalPlacement = errors.New("placement breaks the corner rule")
	ErrInvalidSeat      = errors.New("seat must be in 0..3")
)

// State is everything a decision needs: the board, every player's inventory,
// the bonus squares and whose turn it is. Search owns a State exclusively
// while it runs and mutates it only through Play and Placement.Rollback.
type State struct {
	Board       *Board
	Inventories [NumPlayers]*Inventory
	Bonus       BonusSquares
	Turn        Seat
}

func NewState(board *Board, inventories [NumPlayers]*Inventory, bonus []Point, turn Seat) *State {
	return &State{
		Board:       board,
		Inventories: inventories,
		Bonus:       NewBonusSquares(bonus),
		Turn:        turn,
	}
}

// NewStandardState sets up an empty n×n board where every player holds the standard pieces.
func NewStandardState(n int, bonus []Point) *State {
	var inventories [NumPlayers]*Inventory
	pieces := StandardPieces()
	for i := range inventories {
		inventories[i] = NewInventory(pieces)
	}
	return NewState(NewBoard(n), inventories, bonus, 0)
}

// Clone deep copies the mutable parts. Bonus squares are shared as they never change.
func (s *State) Clone() *State {
	c := &State{
		Board: s.Board.Clone(),
		Bonus: s.Bonus,
		Turn:  s.Turn,
	}
	for i, inv := range s.Inventories {
		c.Inventories[i] = inv.Clone()
	}
	return c
}

func (s *State) LegalMoves(player Seat) []Move {
	return LegalMoves(s.Board, player, s.Inventories[player])
}

// Placement is a move applied to a State. Rollback reverts it and is safe to call more than once.
type Placement struct {
	state  *State
	player Seat
	move   Move
	cells  []Point
	done   bool
}

// Play validates move for player and applies it, consuming the piece from the inventory.
// A pass returns a placement whose rollback does nothing.
func (s *State) Play(player Seat, move Move) (*Placement, error) {
	if !player.Valid() {
		return nil, fmt.Errorf("cannot play %v for seat %d: %w", move, int(player), ErrInvalidSeat)
	}
	if move.IsPass() {
		return &Placement{state: s, player: player, move: move}, nil
	}

	inv := s.Inventories[player]
	if !inv.Available(move.Piece) {
		return nil, fmt.Errorf("cannot play %v: %w", move, ErrPieceUnavailable)
	}
	if move.Rotation < 0 || move.Rotation > 3 {
		return nil, fmt.Errorf("cannot play %v: %w", move, ErrInvalidRotation)
	}
	rotated := inv.Piece(move.Piece).Rotated(move.Rotation)
	if !CanPlace(s.Board, player, rotated, move.Anchor()) {
		return nil, fmt.Errorf("cannot play %v: %w", move, ErrIllegalPlacement)
	}

	cells := rotated.Place(move.Anchor())
	if err := s.Board.Apply(player, cells); err != nil {
		return nil, fmt.Errorf("cannot play %v: %w", move, err)
	}
	if err := inv.Take(move.Piece); err != nil {
		s.Board.Undo(cells)
		return nil, err
	}
	return &Placement{state: s, player: player, move: move, cells: cells}, nil
}

func (p *Placement) Move() Move {
	return p.move
}

func (p *Placement) Cells() []Point {
	return p.cells
}

func (p *Placement) Rollback() {
	if p.done {
		return
	}
	p.done = true
	if p.move.IsPass() {
		return
	}
	p.state.Board.Undo(p.cells)
	p.state.Inventories[p.player].Restore(p.move.Piece)
}
