package gobblet

import (
	"testing"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_LegalMoves(t *testing.T) {
	t.Run("Opening offers every size on every cell", func(t *testing.T) {
		// Given: a fresh match
		match := NewMatch("m1", entity.Red)

		// When: legal moves are listed
		moves := match.LegalMoves()

		// Then: 3 sizes x 9 cells, no relocations on an empty board
		require.Len(t, moves, 27)
		for _, move := range moves {
			assert.Equal(t, MoveFromInventory, move.Kind)
		}
	})

	t.Run("Lists relocations and respects stacking", func(t *testing.T) {
		// Given: red big at (1,1), green to move
		match := NewMatch("m1", entity.Red)
		require.NoError(t, match.PlaceFromInventory(entity.Big, 1, 1))
		before := match.Snapshot()

		// When: legal moves are listed for green
		moves := match.LegalMoves()

		// Then: nothing can be placed on (1,1), the big token can go to any other cell
		assert.NotContains(t, moves, PlaceMove(entity.Big, 1, 1))
		assert.Contains(t, moves, PlaceMove(entity.Small, 0, 0))
		assert.Contains(t, moves, RelocateMove(1, 1, 2, 2))
		assert.NotContains(t, moves, RelocateMove(1, 1, 1, 1))
		assert.Len(t, moves, 3*8+8)

		// And: listing moves did not touch the board
		assert.Equal(t, before, match.Snapshot())
	})

	t.Run("Every listed move is accepted", func(t *testing.T) {
		// Given: a match a few turns in
		match := NewMatch("m1", entity.Green)
		require.NoError(t, match.PlaceFromInventory(entity.Small, 0, 0))
		require.NoError(t, match.PlaceFromInventory(entity.Mid, 0, 0))
		require.NoError(t, match.PlaceFromInventory(entity.Small, 2, 2))

		// Then: every listed move succeeds on a replay of the same position
		for _, move := range match.LegalMoves() {
			replay := NewMatch("m2", entity.Green)
			require.NoError(t, replay.PlaceFromInventory(entity.Small, 0, 0))
			require.NoError(t, replay.PlaceFromInventory(entity.Mid, 0, 0))
			require.NoError(t, replay.PlaceFromInventory(entity.Small, 2, 2))

			assert.NoError(t, replay.Apply(move), move.String())
		}
	})
}
