package console

import (
	"context"

	"github.com/rocketscienceinc/gobblet/internal/gobblet"
)

const helpText = `commands:
  show                      draw the board (a)
  place <size> <x> <y>      play a token from your inventory (b)
  move <sx> <sy> <tx> <ty>  move an exposed token on the board (c)
  moves                     list your legal moves
  help                      show this text
  quit                      leave the match
sizes: s(mall), m(id), b(ig); coordinates 0-2, "x y" or "x,y"
`

func (that *Server) handleShow(_ context.Context, _ []string) error {
	that.render()
	return nil
}

func (that *Server) handlePlace(ctx context.Context, args []string) error {
	move, err := parsePlace(args)
	if err != nil {
		return err
	}

	return that.play(ctx, move)
}

func (that *Server) handleMove(ctx context.Context, args []string) error {
	move, err := parseRelocate(args)
	if err != nil {
		return err
	}

	return that.play(ctx, move)
}

func (that *Server) handleMoves(_ context.Context, _ []string) error {
	that.print(that.renderer.Moves(that.manager.LegalMoves()))
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.print(helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

func (that *Server) play(ctx context.Context, move gobblet.Move) error {
	state, err := that.manager.Apply(ctx, move)
	if err != nil {
		return err
	}

	that.render()

	if state.IsFinished() {
		that.print(that.renderer.State(state))
	}

	return nil
}
