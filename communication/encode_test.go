package communication

import (
	"testing"

	"blokus/game"

	"github.com/stretchr/testify/require"
)

func TestEncodeState(t *testing.T) {
	t.Run("decoding what was encoded", func(t *testing.T) {
		state := game.NewStandardState(6, []game.Point{{X: 3, Y: 1}, {X: 1, Y: 4}})
		_, err := state.Play(0, game.Move{Piece: 2, Rotation: 1, X: 0, Y: 0})
		require.NoError(t, err)
		require.NoError(t, state.Board.Set(game.Point{X: 2, Y: 2}, game.Crater))
		state.Turn = 1

		data, indices, err := EncodeState(state, true)
		require.NoError(t, err)
		update, err := DecodeUpdate(data)
		require.NoError(t, err)

		require.True(t, update.Move)
		require.Equal(t, game.Seat(1), *update.Turn)
		require.True(t, state.Board.Equal(update.Board))
		require.Equal(t, []game.Point{{X: 1, Y: 4}, {X: 3, Y: 1}}, update.Bonus, "Bonus squares should be sorted")
		require.Equal(t, 20, update.Inventories[0].Len(), "Placed piece should not be sent")
		require.Equal(t, 21, update.Inventories[1].Len())
		require.Equal(t, 3, indices[0][2], "Wire index 2 should map past the placed piece")
		require.Equal(t, state.Inventories[0].Piece(3), update.Inventories[0].Piece(2))
	})

	t.Run("setup message", func(t *testing.T) {
		update, err := DecodeUpdate(EncodeSeat(3))
		require.NoError(t, err)
		require.Equal(t, game.Seat(3), *update.Number)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("parsing placements and passes", func(t *testing.T) {
		move, err := ParseMove("4 2 10 0")
		require.NoError(t, err)
		require.Equal(t, game.Move{Piece: 4, Rotation: 2, X: 10, Y: 0}, move)

		move, err = ParseMove(FormatMove(game.PassMove))
		require.NoError(t, err)
		require.True(t, move.IsPass())
	})

	t.Run("rejecting malformed moves", func(t *testing.T) {
		for _, line := range []string{"", "1 2 3", "1 2 3 x", "1 4 0 0", "-1 0 0 0", "DEBUG 0 0 0 0"} {
			_, err := ParseMove(line)
			require.ErrorIs(t, err, ErrMalformed, line)
		}
	})

	t.Run("telling debug lines apart", func(t *testing.T) {
		require.True(t, IsDebug(FormatDebug("x")))
		require.False(t, IsDebug("0 0 0 0"))
	})
}
