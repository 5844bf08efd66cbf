package gobblet

import (
	"fmt"

	"github.com/rocketscienceinc/gobblet/internal/apperror"
	"github.com/rocketscienceinc/gobblet/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// State is what a front end needs to render a match and drive its loop.
type State struct {
	ID          string       `json:"id"`
	ActiveColor entity.Color `json:"active_color"`
	Winner      entity.Color `json:"winner"`
	Status      string       `json:"status"`
	Turns       int          `json:"turns"`
}

func (that State) IsFinished() bool {
	return that.Status == StatusFinished
}

// Match runs the turns of two players over one board until a line is completed.
// It is not safe for concurrent use.
type Match struct {
	id          string
	board       *entity.Board
	players     map[entity.Color]*entity.Player
	activeColor entity.Color
	winner      entity.Color
	status      string
	turns       int
}

// NewMatch starts an empty match where first moves first.
// The caller picks first; the match never draws randomness itself.
func NewMatch(id string, first entity.Color) *Match {
	if !first.IsValid() {
		panic(fmt.Sprintf("gobblet: invalid start color %d", first))
	}

	return &Match{
		id:    id,
		board: entity.NewBoard(),
		players: map[entity.Color]*entity.Player{
			first:            entity.NewPlayer(first),
			first.Opposite(): entity.NewPlayer(first.Opposite()),
		},
		activeColor: first,
		status:      StatusOngoing,
	}
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) State() State {
	return State{
		ID:          that.id,
		ActiveColor: that.activeColor,
		Winner:      that.winner,
		Status:      that.status,
		Turns:       that.turns,
	}
}

func (that *Match) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Match) Snapshot() entity.Snapshot {
	return that.board.Snapshot()
}

// Inventory returns a copy of the remaining tokens of color.
func (that *Match) Inventory(color entity.Color) entity.Inventory {
	player, ok := that.players[color]
	if !ok {
		return entity.Inventory{}
	}

	return player.Inventory()
}

// PlaceFromInventory plays a new token of size on (x,y) for the active player.
func (that *Match) PlaceFromInventory(size entity.Size, x, y int) error {
	if err := that.confirmOngoing(); err != nil {
		return err
	}

	if err := that.activePlayer().PlaceFromInventory(that.board, x, y, size); err != nil {
		return fmt.Errorf("invalid placement: %w", err)
	}

	that.completeTurn()

	return nil
}

// PlaceFromBoard moves the exposed token of (sx,sy) onto (tx,ty) for the active player.
func (that *Match) PlaceFromBoard(sx, sy, tx, ty int) error {
	if err := that.confirmOngoing(); err != nil {
		return err
	}

	if err := that.activePlayer().PlaceFromBoard(that.board, sx, sy, tx, ty); err != nil {
		return fmt.Errorf("invalid relocation: %w", err)
	}

	that.completeTurn()

	return nil
}

// Apply dispatches move to the matching operation.
func (that *Match) Apply(move Move) error {
	switch move.Kind {
	case MoveFromInventory:
		return that.PlaceFromInventory(move.Size, move.To.X, move.To.Y)
	case MoveFromBoard:
		return that.PlaceFromBoard(move.From.X, move.From.Y, move.To.X, move.To.Y)
	default:
		return fmt.Errorf("%w: %d", apperror.ErrUnknownMove, move.Kind)
	}
}

func (that *Match) activePlayer() *entity.Player {
	return that.players[that.activeColor]
}

func (that *Match) confirmOngoing() error {
	if that.IsFinished() {
		return fmt.Errorf("%w: %s won", apperror.ErrMatchAlreadyOver, that.winner)
	}

	return nil
}

// completeTurn runs once a token has landed: either the match is won or the turn passes.
func (that *Match) completeTurn() {
	that.turns++

	if winner, ok := that.board.Winner(); ok {
		that.winner = winner
		that.status = StatusFinished

		return
	}

	that.activeColor = that.activeColor.Opposite()
}
