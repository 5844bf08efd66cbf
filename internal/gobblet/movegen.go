package gobblet

import "github.com/rocketscienceinc/gobblet/internal/entity"

// LegalMoves lists every move the active player may make now, placements first.
// It only runs the non-mutating checks, so the match is left untouched.
func (that *Match) LegalMoves() []Move {
	if that.IsFinished() {
		return nil
	}

	player := that.activePlayer()
	moves := make([]Move, 0, 16)

	for _, size := range entity.Sizes {
		for y := range entity.BoardSize {
			for x := range entity.BoardSize {
				if player.CheckPlaceFromInventory(that.board, x, y, size) == nil {
					moves = append(moves, PlaceMove(size, x, y))
				}
			}
		}
	}

	for sy := range entity.BoardSize {
		for sx := range entity.BoardSize {
			for ty := range entity.BoardSize {
				for tx := range entity.BoardSize {
					if player.CheckPlaceFromBoard(that.board, sx, sy, tx, ty) == nil {
						moves = append(moves, RelocateMove(sx, sy, tx, ty))
					}
				}
			}
		}
	}

	return moves
}
