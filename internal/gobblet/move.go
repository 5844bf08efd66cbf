package gobblet

import (
	"fmt"

	"github.com/rocketscienceinc/gobblet/internal/entity"
)

type MoveKind uint8

const (
	MoveFromInventory MoveKind = iota + 1
	MoveFromBoard
)

func (that MoveKind) String() string {
	switch that {
	case MoveFromInventory:
		return "place"
	case MoveFromBoard:
		return "move"
	default:
		return "unknown"
	}
}

func (that MoveKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// Move is one turn request. Size is only meaningful for MoveFromInventory, From only for MoveFromBoard.
type Move struct {
	Kind MoveKind     `json:"kind"`
	Size entity.Size  `json:"size,omitempty"`
	From entity.Point `json:"from"`
	To   entity.Point `json:"to"`
}

func PlaceMove(size entity.Size, x, y int) Move {
	return Move{
		Kind: MoveFromInventory,
		Size: size,
		To:   entity.Point{X: x, Y: y},
	}
}

func RelocateMove(sx, sy, tx, ty int) Move {
	return Move{
		Kind: MoveFromBoard,
		From: entity.Point{X: sx, Y: sy},
		To:   entity.Point{X: tx, Y: ty},
	}
}

func (that Move) String() string {
	switch that.Kind {
	case MoveFromInventory:
		return fmt.Sprintf("place %s %s", that.Size, that.To)
	case MoveFromBoard:
		return fmt.Sprintf("move %s %s", that.From, that.To)
	default:
		return "unknown move"
	}
}
