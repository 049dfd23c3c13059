package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	t.Run("empty board is not terminal", func(t *testing.T) {
		over, winner := Terminal(NewBoard(5, 2))

		require.False(t, over)
		require.Equal(t, Empty, winner)
	})

	t.Run("horizontal five wins on the move that completes it", func(t *testing.T) {
		b := NewBoard(5, 2)
		for _, action := range []int{0, 5, 1, 6, 2, 7, 3, 8} {
			require.NoError(t, b.ApplyMove(action))
		}

		over, _ := b.IsTerminal()
		require.False(t, over, "Four in a row should not end the game")

		require.NoError(t, b.ApplyMove(4))
		over, winner := b.IsTerminal()
		require.True(t, over)
		require.Equal(t, PlayerA, winner)
	})

	lines := []struct {
		name    string
		actions []int
	}{
		{"vertical", []int{3, 10, 17, 24, 31}},
		{"diagonal", []int{0, 8, 16, 24, 32}},
		{"anti-diagonal", []int{4, 10, 16, 22, 28}},
		{"horizontal off the edge", []int{44, 45, 46, 47, 48}},
	}
	for _, line := range lines {
		t.Run(line.name+" five wins", func(t *testing.T) {
			b := NewBoard(7, 2)
			place(t, b, PlayerB, line.actions[0])
			place(t, b, PlayerB, line.actions[1:4]...)

			over, _ := b.IsTerminal()
			require.False(t, over, "Four stones should not end the game")

			place(t, b, PlayerB, line.actions[4])
			over, winner := b.IsTerminal()
			require.True(t, over)
			require.Equal(t, PlayerB, winner)
		})
	}

	t.Run("run longer than five still wins", func(t *testing.T) {
		b := NewBoard(7, 2)
		place(t, b, PlayerA, 7, 8, 9, 10, 11, 12)

		over, winner := b.IsTerminal()
		require.True(t, over)
		require.Equal(t, PlayerA, winner)
	})

	t.Run("blocked four is not a win", func(t *testing.T) {
		b := NewBoard(7, 2)
		place(t, b, PlayerA, 1, 2, 3, 4)
		place(t, b, PlayerB, 0, 5)

		over, winner := b.IsTerminal()
		require.False(t, over)
		require.Equal(t, Empty, winner)
	})

	t.Run("mixed owners do not form a line", func(t *testing.T) {
		b := NewBoard(7, 2)
		place(t, b, PlayerA, 0, 1, 3, 4)
		place(t, b, PlayerB, 2)

		over, _ := b.IsTerminal()
		require.False(t, over)
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := NewBoard(4, 1)
		for action := 0; action < b.Cells(); action++ {
			owner := PlayerA
			if (action/4+action%4)%2 == 1 {
				owner = PlayerB
			}
			place(t, b, owner, action)
		}

		over, winner := b.IsTerminal()
		require.True(t, over)
		require.Equal(t, Empty, winner, "Full board should be a draw")
	})
}
