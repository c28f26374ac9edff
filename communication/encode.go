package communication

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"blokus/game"

	"github.com/pkg/errors"
)

type outPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type outBoard struct {
	Dimension    int        `json:"dimension"`
	Grid         [][]int    `json:"grid"`
	BonusSquares []outPoint `json:"bonus_squares"`
}

type outUpdate struct {
	Board  outBoard       `json:"board"`
	Turn   int            `json:"turn"`
	Blocks [][][]outPoint `json:"blocks"`
	Move   int            `json:"move"`
}

// EncodeSeat renders the setup message telling a player its number.
func EncodeSeat(seat game.Seat) []byte {
	return []byte(`{"number": ` + strconv.Itoa(int(seat)) + `}`)
}

// EncodeState renders a board update. Only unplaced pieces are sent, so the
// returned table maps each seat's wire piece index back to its inventory index.
func EncodeState(state *game.State, move bool) ([]byte, [game.NumPlayers][]int, error) {
	var indices [game.NumPlayers][]int
	update := outUpdate{
		Board: outBoard{
			Dimension:    state.Board.Size(),
			Grid:         state.Board.Grid(),
			BonusSquares: []outPoint{},
		},
		Turn:   int(state.Turn),
		Blocks: make([][][]outPoint, game.NumPlayers),
	}
	if move {
		update.Move = 1
	}

	bonus := state.Bonus.Points()
	sort.Slice(bonus, func(i, j int) bool {
		if bonus[i].X != bonus[j].X {
			return bonus[i].X < bonus[j].X
		}
		return bonus[i].Y < bonus[j].Y
	})
	for _, p := range bonus {
		update.Board.BonusSquares = append(update.Board.BonusSquares, outPoint(p))
	}

	for seat, inv := range state.Inventories {
		update.Blocks[seat] = [][]outPoint{}
		for i := 0; i < inv.Len(); i++ {
			if !inv.Available(i) {
				continue
			}
			piece := inv.Piece(i)
			offsets := make([]outPoint, len(piece))
			for j, offset := range piece {
				offsets[j] = outPoint(offset)
			}
			update.Blocks[seat] = append(update.Blocks[seat], offsets)
			indices[seat] = append(indices[seat], i)
		}
	}

	data, err := json.Marshal(update)
	if err != nil {
		return nil, indices, errors.Wrap(err, "failed to encode state")
	}
	return data, indices, nil
}

// ParseMove reads a move response line.
func ParseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return game.PassMove, errors.Wrapf(ErrMalformed, "move %q needs four integers", line)
	}
	var values [4]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return game.PassMove, errors.Wrapf(ErrMalformed, "move %q: %v", line, err)
		}
		values[i] = v
	}

	move := game.Move{Piece: values[0], Rotation: values[1], X: values[2], Y: values[3]}
	if move == game.PassMove {
		return move, nil
	}
	if move.Piece < 0 || move.Rotation < 0 || move.Rotation > 3 {
		return game.PassMove, errors.Wrapf(ErrMalformed, "move %q", line)
	}
	return move, nil
}

// IsDebug reports whether a line belongs to the diagnostic channel.
func IsDebug(line string) bool {
	return strings.HasPrefix(line, debugPrefix)
}
