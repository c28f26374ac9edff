package communication

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"blokus/game"

	"github.com/pkg/errors"
)

var ErrMalformed = errors.New("malformed update")

const debugPrefix = "DEBUG "

// Update is one decoded state message. Every field is optional; Board is
// set together with Turn and Inventories.
type Update struct {
	Error       *string
	Number      *game.Seat
	Board       *game.Board
	Bonus       []game.Point
	Turn        *game.Seat
	Inventories [game.NumPlayers]*game.Inventory
	Move        bool
}

func (u Update) HasBoard() bool {
	return u.Board != nil
}

// State builds the game state carried by the update. It panics without a board.
func (u Update) State() *game.State {
	if u.Board == nil {
		panic("update has no board")
	}
	return game.NewState(u.Board, u.Inventories, u.Bonus, *u.Turn)
}

type wireUpdate struct {
	Error  *string         `json:"error"`
	Number *int            `json:"number"`
	Board  *wireBoard      `json:"board"`
	Turn   *int            `json:"turn"`
	Blocks json.RawMessage `json:"blocks"`
	Move   json.RawMessage `json:"move"`
}

type wireBoard struct {
	Dimension    int         `json:"dimension"`
	Grid         [][]int     `json:"grid"`
	BonusSquares []wirePoint `json:"bonus_squares"`
}

// wirePoint accepts both {"x": 1, "y": 2} and [1, 2].
type wirePoint game.Point

func (p *wirePoint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var pair []int
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Errorf("point %s needs two coordinates", data)
		}
		*p = wirePoint{X: pair[0], Y: pair[1]}
		return nil
	}

	var obj struct {
		X *int `json:"x"`
		Y *int `json:"y"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.X == nil || obj.Y == nil {
		return errors.Errorf("point %s needs x and y", data)
	}
	*p = wirePoint{X: *obj.X, Y: *obj.Y}
	return nil
}

// DecodeUpdate parses and validates one JSON update line.
func DecodeUpdate(line []byte) (Update, error) {
	var wire wireUpdate
	if err := json.Unmarshal(line, &wire); err != nil {
		return Update{}, errors.Wrapf(ErrMalformed, "invalid json: %v", err)
	}

	update := Update{Error: wire.Error}

	if wire.Number != nil {
		seat := game.Seat(*wire.Number)
		if !seat.Valid() {
			return Update{}, errors.Wrapf(ErrMalformed, "player number %d", *wire.Number)
		}
		update.Number = &seat
	}

	move, err := decodeFlag(wire.Move)
	if err != nil {
		return Update{}, err
	}
	update.Move = move

	if wire.Board == nil {
		return update, nil
	}
	if err := decodeBoard(&update, wire); err != nil {
		return Update{}, err
	}
	return update, nil
}

// decodeFlag accepts 0/1, true/false and a missing value.
func decodeFlag(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return flag, nil
	}
	var number int
	if err := json.Unmarshal(raw, &number); err != nil {
		return false, errors.Wrapf(ErrMalformed, "move flag %s", raw)
	}
	return number != 0, nil
}

func decodeBoard(update *Update, wire wireUpdate) error {
	if wire.Turn == nil {
		return errors.Wrap(ErrMalformed, "board without turn")
	}
	if len(wire.Blocks) == 0 || string(wire.Blocks) == "null" {
		return errors.Wrap(ErrMalformed, "board without blocks")
	}

	turn := game.Seat(*wire.Turn)
	if !turn.Valid() {
		return errors.Wrapf(ErrMalformed, "turn %d", *wire.Turn)
	}
	update.Turn = &turn

	if wire.Board.Dimension != len(wire.Board.Grid) {
		return errors.Wrapf(ErrMalformed, "dimension %d does not match grid of %d columns", wire.Board.Dimension, len(wire.Board.Grid))
	}
	board, err := game.BoardFromGrid(wire.Board.Grid)
	if err != nil {
		return errors.Wrapf(ErrMalformed, "grid: %v", err)
	}
	update.Board = board

	for _, p := range wire.Board.BonusSquares {
		point := game.Point(p)
		if !board.InBounds(point) {
			return errors.Wrapf(ErrMalformed, "bonus square %v is off the board", point)
		}
		update.Bonus = append(update.Bonus, point)
	}

	var blocks [][][]wirePoint
	if err := json.Unmarshal(wire.Blocks, &blocks); err != nil {
		return errors.Wrapf(ErrMalformed, "blocks: %v", err)
	}
	if len(blocks) > game.NumPlayers {
		return errors.Wrapf(ErrMalformed, "blocks for %d players", len(blocks))
	}
	for seat, pieces := range blocks {
		inventory := make([]game.Piece, len(pieces))
		for i, offsets := range pieces {
			points := make([]game.Point, len(offsets))
			for j, offset := range offsets {
				points[j] = game.Point(offset)
			}
			piece, err := game.NewPiece(points...)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "player %d piece %d: %v", seat, i, err)
			}
			inventory[i] = piece
		}
		update.Inventories[seat] = game.NewInventory(inventory)
	}
	return nil
}

// FormatMove renders the move response line. A pass is "-1 -1 -1 -1".
func FormatMove(move game.Move) string {
	if move.IsPass() {
		move = game.PassMove
	}
	return fmt.Sprintf("%d %d %d %d", move.Piece, move.Rotation, move.X, move.Y)
}

// FormatDebug renders a single diagnostic line.
func FormatDebug(message string) string {
	return debugPrefix + strings.Join(strings.Fields(message), " ")
}
