package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
)

type matchEngine interface {
	Apply(move gobblet.Move) error
	State() gobblet.State
	Snapshot() entity.Snapshot
	Inventory(color entity.Color) entity.Inventory
	LegalMoves() []gobblet.Move
}

// MatchManager drives one match on behalf of a front end and logs what happens to it.
type MatchManager struct {
	logger *slog.Logger
	match  matchEngine
}

func NewMatchManager(logger *slog.Logger, match matchEngine) *MatchManager {
	state := match.State()

	return &MatchManager{
		logger: logger.With("component", "match_manager", "matchID", state.ID),
		match:  match,
	}
}

// Apply plays move for the active player and returns the resulting state.
// A rejected move returns the unchanged state together with the reason.
func (that *MatchManager) Apply(ctx context.Context, move gobblet.Move) (gobblet.State, error) {
	log := that.logger.With("method", "Apply")

	if err := ctx.Err(); err != nil {
		return that.match.State(), fmt.Errorf("match manager stopped: %w", err)
	}

	player := that.match.State().ActiveColor

	if err := that.match.Apply(move); err != nil {
		log.DebugContext(ctx, "move rejected", "player", player, "move", move.String(), "error", err)

		return that.match.State(), fmt.Errorf("failed to apply %s: %w", move, err)
	}

	state := that.match.State()
	log.InfoContext(ctx, "move played", "player", player, "move", move.String(), "turn", state.Turns)

	if state.IsFinished() {
		log.InfoContext(ctx, "match won", "winner", state.Winner, "turns", state.Turns)
	}

	return state, nil
}

func (that *MatchManager) State() gobblet.State {
	return that.match.State()
}

func (that *MatchManager) Snapshot() entity.Snapshot {
	return that.match.Snapshot()
}

func (that *MatchManager) Inventory(color entity.Color) entity.Inventory {
	return that.match.Inventory(color)
}

func (that *MatchManager) LegalMoves() []gobblet.Move {
	return that.match.LegalMoves()
}
