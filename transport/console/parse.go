package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
)

var (
	ErrUnknownCommand = errors.New("unknown command, type help")
	ErrBadArguments   = errors.New("bad arguments")
)

// splitCommand lowercases line and separates the command from its arguments.
// Commas count as separators so "1,2" and "1 2" are the same coordinates.
func splitCommand(line string) (string, []string) {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(line), ",", " "))
	if len(fields) == 0 {
		return "", nil
	}

	return fields[0], fields[1:]
}

func parseCoords(args []string, count int) ([]int, error) {
	if len(args) != count {
		return nil, fmt.Errorf("%w: want %d coordinates, got %d", ErrBadArguments, count, len(args))
	}

	coords := make([]int, count)
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a coordinate", ErrBadArguments, arg)
		}
		coords[i] = value
	}

	return coords, nil
}

// parsePlace reads "<size> <x> <y>".
func parsePlace(args []string) (gobblet.Move, error) {
	if len(args) == 0 {
		return gobblet.Move{}, fmt.Errorf("%w: usage: place <size> <x> <y>", ErrBadArguments)
	}

	size, err := entity.ParseSize(args[0])
	if err != nil {
		return gobblet.Move{}, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}

	coords, err := parseCoords(args[1:], 2)
	if err != nil {
		return gobblet.Move{}, err
	}

	return gobblet.PlaceMove(size, coords[0], coords[1]), nil
}

// parseRelocate reads "<sx> <sy> <tx> <ty>".
func parseRelocate(args []string) (gobblet.Move, error) {
	coords, err := parseCoords(args, 4)
	if err != nil {
		return gobblet.Move{}, err
	}

	return gobblet.RelocateMove(coords[0], coords[1], coords[2], coords[3]), nil
}
