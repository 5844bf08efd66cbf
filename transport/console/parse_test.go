package console

import (
	"testing"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	command, args := splitCommand("  PLACE big 1,2 ")
	assert.Equal(t, "place", command)
	assert.Equal(t, []string{"big", "1", "2"}, args)

	command, args = splitCommand("   ")
	assert.Empty(t, command)
	assert.Empty(t, args)
}

func TestParsePlace(t *testing.T) {
	t.Run("Size alias and coordinates", func(t *testing.T) {
		move, err := parsePlace([]string{"m", "2", "0"})

		require.NoError(t, err)
		assert.Equal(t, gobblet.PlaceMove(entity.Mid, 2, 0), move)
	})

	t.Run("Unknown size", func(t *testing.T) {
		_, err := parsePlace([]string{"huge", "0", "0"})

		require.ErrorIs(t, err, ErrBadArguments)
		assert.ErrorIs(t, err, entity.ErrUnknownSize)
	})

	t.Run("Missing arguments", func(t *testing.T) {
		_, err := parsePlace(nil)
		require.ErrorIs(t, err, ErrBadArguments)

		_, err = parsePlace([]string{"big", "1"})
		require.ErrorIs(t, err, ErrBadArguments)
	})

	t.Run("Coordinates outside the board are left to the rules", func(t *testing.T) {
		move, err := parsePlace([]string{"small", "-1", "3"})

		require.NoError(t, err)
		assert.Equal(t, entity.Point{X: -1, Y: 3}, move.To)
	})
}

func TestParseRelocate(t *testing.T) {
	move, err := parseRelocate([]string{"0", "0", "2", "2"})
	require.NoError(t, err)
	assert.Equal(t, gobblet.RelocateMove(0, 0, 2, 2), move)

	_, err = parseRelocate([]string{"0", "x", "2", "2"})
	require.ErrorIs(t, err, ErrBadArguments)

	_, err = parseRelocate([]string{"0", "0"})
	require.ErrorIs(t, err, ErrBadArguments)
}
