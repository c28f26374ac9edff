package game

import (
	"errors"
	"fmt"
	"sort"
)

var ErrPieceUnavailable = errors.New("piece is not available")

// Inventory is a player's ordered piece list. Indices stay stable for the
// life of the inventory; placing a piece only marks it as used.
type Inventory struct {
	pieces []Piece
	used   []bool
}

func NewInventory(pieces []Piece) *Inventory {
	return &Inventory{
		pieces: pieces,
		used:   make([]bool, len(pieces)),
	}
}

func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.pieces)
}

func (inv *Inventory) Piece(i int) Piece {
	return inv.pieces[i]
}

func (inv *Inventory) Available(i int) bool {
	return i >= 0 && i < inv.Len() && !inv.used[i]
}

// Remaining counts the pieces that have not been placed.
func (inv *Inventory) Remaining() int {
	count := 0
	for i := 0; i < inv.Len(); i++ {
		if !inv.used[i] {
			count++
		}
	}
	return count
}

// RemainingCells counts the cells of all unplaced pieces.
func (inv *Inventory) RemainingCells() int {
	count := 0
	for i := 0; i < inv.Len(); i++ {
		if !inv.used[i] {
			count += inv.pieces[i].Size()
		}
	}
	return count
}

func (inv *Inventory) Take(i int) error {
	if !inv.Available(i) {
		return fmt.Errorf("cannot take piece %d: %w", i, ErrPieceUnavailable)
	}
	inv.used[i] = true
	return nil
}

func (inv *Inventory) Restore(i int) {
	inv.used[i] = false
}

// Order lists the available piece indices, largest piece first and then by index.
func (inv *Inventory) Order() []int {
	order := make([]int, 0, inv.Len())
	for i := 0; i < inv.Len(); i++ {
		if !inv.used[i] {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return inv.pieces[order[a]].Size() > inv.pieces[order[b]].Size()
	})
	return order
}

// Clone shares the immutable piece templates and copies the usage flags.
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}
	used := make([]bool, len(inv.used))
	copy(used, inv.used)
	return &Inventory{pieces: inv.pieces, used: used}
}

func (inv *Inventory) Equal(other *Inventory) bool {
	if inv.Len() != other.Len() {
		return false
	}
	for i := 0; i < inv.Len(); i++ {
		if inv.used[i] != other.used[i] {
			return false
		}
	}
	return true
}
