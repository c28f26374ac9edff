package communication

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"blokus/game"

	"github.com/stretchr/testify/require"
)

const boardUpdate = `{"board": {"dimension": 3, "grid": [[-1, -1, -2], [-1, 0, -1], [-1, -1, -1]], "bonus_squares": [[1, 1], {"x": 2, "y": 0}]}, "turn": 2, "blocks": [[[{"x": 0, "y": 0}], [{"x": 0, "y": 0}, {"x": 1, "y": 0}]], [], [[{"x": 0, "y": 0}]], []], "move": 1}`

func TestDecodeUpdate(t *testing.T) {
	t.Run("decoding the setup message", func(t *testing.T) {
		update, err := DecodeUpdate([]byte(`{"number": 3}`))
		require.NoError(t, err)

		require.NotNil(t, update.Number)
		require.Equal(t, game.Seat(3), *update.Number)
		require.False(t, update.HasBoard())
		require.False(t, update.Move)
		require.Nil(t, update.Error)
	})

	t.Run("decoding a board update", func(t *testing.T) {
		update, err := DecodeUpdate([]byte(boardUpdate))
		require.NoError(t, err)

		require.True(t, update.HasBoard())
		require.True(t, update.Move)
		require.Equal(t, game.Seat(2), *update.Turn)
		require.Equal(t, game.Crater, update.Board.At(game.Point{X: 0, Y: 2}))
		require.Equal(t, game.Cell(0), update.Board.At(game.Point{X: 1, Y: 1}))
		require.Equal(t, []game.Point{{X: 1, Y: 1}, {X: 2, Y: 0}}, update.Bonus)
		require.Equal(t, 2, update.Inventories[0].Len())
		require.Equal(t, 0, update.Inventories[1].Len())
		require.Equal(t, game.Piece{{X: 0, Y: 0}, {X: 1, Y: 0}}, update.Inventories[0].Piece(1))

		state := update.State()
		require.Equal(t, game.Seat(2), state.Turn)
		require.True(t, state.Bonus.Has(game.Point{X: 2, Y: 0}))
	})

	t.Run("accepting boolean move flags", func(t *testing.T) {
		update, err := DecodeUpdate([]byte(`{"move": true}`))
		require.NoError(t, err)
		require.True(t, update.Move)

		update, err = DecodeUpdate([]byte(`{"move": 0}`))
		require.NoError(t, err)
		require.False(t, update.Move)
	})

	t.Run("keeping the error field", func(t *testing.T) {
		update, err := DecodeUpdate([]byte(`{"error": "invalid move"}`))
		require.NoError(t, err)
		require.Equal(t, "invalid move", *update.Error)
	})

	t.Run("rejecting malformed updates", func(t *testing.T) {
		cases := []struct {
			name string
			line string
		}{
			{"bad json", `{"number": `},
			{"number out of range", `{"number": 4}`},
			{"board without turn", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": []}, "blocks": []}`},
			{"board without blocks", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": []}, "turn": 0}`},
			{"turn out of range", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": []}, "turn": 5, "blocks": []}`},
			{"dimension mismatch", `{"board": {"dimension": 2, "grid": [[-1]], "bonus_squares": []}, "turn": 0, "blocks": []}`},
			{"unknown cell", `{"board": {"dimension": 1, "grid": [[7]], "bonus_squares": []}, "turn": 0, "blocks": []}`},
			{"bonus off board", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": [[1, 0]]}, "turn": 0, "blocks": []}`},
			{"empty piece", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": []}, "turn": 0, "blocks": [[[]]]}`},
			{"point without y", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": [{"x": 0}]}, "turn": 0, "blocks": []}`},
			{"too many players", `{"board": {"dimension": 1, "grid": [[-1]], "bonus_squares": []}, "turn": 0, "blocks": [[], [], [], [], []]}`},
			{"bad move flag", `{"move": "yes"}`},
		}
		for _, c := range cases {
			_, err := DecodeUpdate([]byte(c.line))
			require.ErrorIs(t, err, ErrMalformed, c.name)
		}
	})
}

func TestFormat(t *testing.T) {
	t.Run("formatting a move", func(t *testing.T) {
		require.Equal(t, "3 1 10 7", FormatMove(game.Move{Piece: 3, Rotation: 1, X: 10, Y: 7}))
		require.Equal(t, "0 0 0 0", FormatMove(game.Move{}))
	})

	t.Run("pass never looks like a placement", func(t *testing.T) {
		require.Equal(t, "-1 -1 -1 -1", FormatMove(game.PassMove))
		require.NotEqual(t, FormatMove(game.Move{}), FormatMove(game.PassMove))
	})

	t.Run("debug lines stay on one line", func(t *testing.T) {
		require.Equal(t, "DEBUG Error: bad 0 0 0 0", FormatDebug("Error: bad\n0 0 0 0"))
		require.NotContains(t, FormatDebug("Error: bad\n0 0 0 0"), "\n")
	})
}

func TestStdioCommunicator(t *testing.T) {
	t.Run("reading updates line by line", func(t *testing.T) {
		in := strings.NewReader("{\"number\": 1}\n\n{oops}\n" + boardUpdate + "\n")
		comm := NewStdioCommunicator(in, io.Discard)

		update, err := comm.Receive()
		require.NoError(t, err)
		require.Equal(t, game.Seat(1), *update.Number)

		_, err = comm.Receive()
		require.True(t, errors.Is(err, ErrMalformed), "Broken line should be reported")

		update, err = comm.Receive()
		require.NoError(t, err, "Reading should continue after a broken line")
		require.True(t, update.HasBoard())

		_, err = comm.Receive()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("writing moves and diagnostics", func(t *testing.T) {
		var out bytes.Buffer
		comm := NewStdioCommunicator(strings.NewReader(""), &out)

		require.NoError(t, comm.SendDebug("hello"))
		require.NoError(t, comm.SendMove(game.Move{Piece: 2, Rotation: 3, X: 0, Y: 19}))
		require.NoError(t, comm.SendMove(game.PassMove))

		require.Equal(t, "DEBUG hello\n2 3 0 19\n-1 -1 -1 -1\n", out.String())
	})
}
