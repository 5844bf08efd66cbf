package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gobblet/internal/apperror"
)

// Player owns a color and the tokens not yet on the board.
type Player struct {
	color     Color
	inventory Inventory
}

func NewPlayer(color Color) *Player {
	return &Player{
		color:     color,
		inventory: NewInventory(),
	}
}

func (that *Player) Color() Color {
	return that.color
}

// Inventory returns a copy of the player's remaining tokens.
func (that *Player) Inventory() Inventory {
	return that.inventory
}

// Withdraw takes one token of size out of the inventory.
func (that *Player) Withdraw(size Size) (Token, error) {
	if !that.inventory.take(size) {
		return Token{}, fmt.Errorf("%w: %s %s", apperror.ErrInventoryExhausted, that.color, size)
	}

	return NewToken(that.color, size), nil
}

// CheckPlaceFromInventory validates a placement without spending anything.
func (that *Player) CheckPlaceFromInventory(board *Board, x, y int, size Size) error {
	cell, err := board.CellAt(x, y)
	if err != nil {
		return err
	}

	if !that.inventory.Has(size) {
		return fmt.Errorf("%w: %s %s", apperror.ErrInventoryExhausted, that.color, size)
	}

	if !cell.CanAccept(NewToken(that.color, size)) {
		return fmt.Errorf("%w: %s %s on (%d,%d)", apperror.ErrIllegalStack, that.color, size, x, y)
	}

	return nil
}

// PlaceFromInventory puts a new token on (x,y). The inventory is only spent
// once the destination is known to accept the token.
func (that *Player) PlaceFromInventory(board *Board, x, y int, size Size) error {
	if err := that.CheckPlaceFromInventory(board, x, y, size); err != nil {
		return err
	}

	token, err := that.Withdraw(size)
	if err != nil {
		return err
	}

	cell, _ := board.CellAt(x, y)
	cell.Push(token)

	return nil
}

// CheckPlaceFromBoard validates a relocation without lifting the token.
func (that *Player) CheckPlaceFromBoard(board *Board, sx, sy, tx, ty int) error {
	source, err := board.CellAt(sx, sy)
	if err != nil {
		return err
	}

	target, err := board.CellAt(tx, ty)
	if err != nil {
		return err
	}

	token, ok := source.Top()
	if !ok {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrEmptyCell, sx, sy)
	}

	if !target.CanAccept(token) {
		return fmt.Errorf("%w: %s from (%d,%d) to (%d,%d)", apperror.ErrIllegalStack, token, sx, sy, tx, ty)
	}

	return nil
}

// PlaceFromBoard moves the exposed token of (sx,sy) onto (tx,ty).
// Nothing is lifted unless the destination accepts it, so a failed move changes nothing.
func (that *Player) PlaceFromBoard(board *Board, sx, sy, tx, ty int) error {
	if err := that.CheckPlaceFromBoard(board, sx, sy, tx, ty); err != nil {
		return err
	}

	token, err := board.RelocateTop(sx, sy)
	if err != nil {
		return err
	}

	target, _ := board.CellAt(tx, ty)
	target.Push(token)

	return nil
}
