package usecase_test

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/gobblet/internal/apperror"
	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
	"github.com/rocketscienceinc/gobblet/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchManager_Apply(t *testing.T) {
	t.Run("Accepted move returns the new state", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: red places a big token in the center
		state, err := st.Manager.Apply(ctx, gobblet.PlaceMove(entity.Big, 1, 1))

		// Then: the turn passed to green and the move was logged
		require.NoError(t, err)
		assert.Equal(t, entity.Green, state.ActiveColor)
		assert.Equal(t, 1, state.Turns)
		assert.Contains(t, st.Logs.String(), `"msg":"move played"`)
		assert.Contains(t, st.Logs.String(), `"player":"red"`)
	})

	t.Run("Rejected move keeps the state", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: red relocates from an empty cell
		state, err := st.Manager.Apply(ctx, gobblet.RelocateMove(0, 0, 1, 1))

		// Then: the reason is reported and red is still active
		require.ErrorIs(t, err, apperror.ErrEmptyCell)
		assert.Equal(t, entity.Red, state.ActiveColor)
		assert.Equal(t, 0, state.Turns)
		assert.Contains(t, st.Logs.String(), `"msg":"move rejected"`)
	})

	t.Run("Win is logged and later moves are refused", func(t *testing.T) {
		ctx, st := suite.NewWithFirst(t, entity.Green)

		// Given: green completes the middle column
		moves := []gobblet.Move{
			gobblet.PlaceMove(entity.Small, 1, 0), // green
			gobblet.PlaceMove(entity.Small, 0, 0), // red
			gobblet.PlaceMove(entity.Mid, 1, 1),   // green
			gobblet.PlaceMove(entity.Small, 2, 0), // red
			gobblet.PlaceMove(entity.Big, 1, 2),   // green
		}

		var state gobblet.State
		var err error
		for _, move := range moves {
			state, err = st.Manager.Apply(ctx, move)
			require.NoError(t, err, move.String())
		}

		// Then: green won and the win was logged
		assert.True(t, state.IsFinished())
		assert.Equal(t, entity.Green, state.Winner)
		assert.Contains(t, st.Logs.String(), `"msg":"match won"`)
		assert.Contains(t, st.Logs.String(), `"winner":"green"`)

		// And: any further move fails
		_, err = st.Manager.Apply(ctx, gobblet.PlaceMove(entity.Big, 2, 2))
		assert.ErrorIs(t, err, apperror.ErrMatchAlreadyOver)
	})

	t.Run("Canceled context stops the manager", func(t *testing.T) {
		_, st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		state, err := st.Manager.Apply(ctx, gobblet.PlaceMove(entity.Big, 1, 1))

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, state.Turns)
		assert.Empty(t, st.Match.Snapshot()[1][1])
	})
}

func TestMatchManager_Views(t *testing.T) {
	ctx, st := suite.New(t)

	_, err := st.Manager.Apply(ctx, gobblet.PlaceMove(entity.Mid, 2, 1))
	require.NoError(t, err)

	assert.Equal(t, st.Match.Snapshot(), st.Manager.Snapshot())
	assert.Equal(t, st.Match.State(), st.Manager.State())
	assert.Equal(t, 5, st.Manager.Inventory(entity.Red).Total())
	assert.Equal(t, st.Match.LegalMoves(), st.Manager.LegalMoves())
}
