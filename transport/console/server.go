package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gobblet/internal/apperror"
	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
)

// maxLineLength caps one command line. Longer lines are dropped and reported.
const maxLineLength = 1024

var (
	ErrLineTooLong = errors.New("line too long")

	errQuit = errors.New("quit")
)

// ruleErrors are reported to the player by kind, without the wrapping detail.
var ruleErrors = []error{
	apperror.ErrOutOfBounds,
	apperror.ErrEmptyCell,
	apperror.ErrInventoryExhausted,
	apperror.ErrIllegalStack,
	apperror.ErrMatchAlreadyOver,
	apperror.ErrUnknownMove,
}

type matchManager interface {
	Apply(ctx context.Context, move gobblet.Move) (gobblet.State, error)
	State() gobblet.State
	Snapshot() entity.Snapshot
	Inventory(color entity.Color) entity.Inventory
	LegalMoves() []gobblet.Move
}

type handler func(ctx context.Context, args []string) error

// Server is the prompt loop: one command per line, until the match is won or the input ends.
type Server struct {
	logger   *slog.Logger
	manager  matchManager
	renderer *Renderer
	in       *bufio.Reader
	out      io.Writer
	handlers map[string]handler
}

func New(logger *slog.Logger, manager matchManager, renderer *Renderer, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		in:       bufio.NewReaderSize(in, maxLineLength),
		out:      out,
		handlers: make(map[string]handler),
	}

	server.handle(server.handleShow, "show", "a")
	server.handle(server.handlePlace, "place", "b")
	server.handle(server.handleMove, "move", "c")
	server.handle(server.handleMoves, "moves")
	server.handle(server.handleHelp, "help", "h", "?")
	server.handle(server.handleQuit, "quit", "exit", "q")

	return server
}

func (that *Server) handle(h handler, names ...string) {
	for _, name := range names {
		that.handlers[name] = h
	}
}

// Start - runs the prompt loop. It returns nil when the match is won, the player quits or the input ends.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	that.print(helpText)
	that.render()

	for {
		if err := ctx.Err(); err != nil {
			log.Info("console stopped", "reason", err)
			return nil
		}

		if state := that.manager.State(); state.IsFinished() {
			return nil
		}

		that.print(that.renderer.State(that.manager.State()) + "> ")

		line, err := that.readLine()
		switch {
		case errors.Is(err, io.EOF):
			log.Info("input closed")
			return nil
		case errors.Is(err, ErrLineTooLong):
			that.print("error: " + err.Error() + "\n")
			continue
		case err != nil:
			return fmt.Errorf("failed to read command: %w", err)
		}

		if err := that.dispatch(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				log.Info("player quit")
				return nil
			}

			that.print("error: " + describe(err) + "\n")
		}
	}
}

// readLine returns the next line without its line ending. A line that does not
// fit the reader buffer is drained up to its newline and reported as ErrLineTooLong.
func (that *Server) readLine() (string, error) {
	line, err := that.in.ReadSlice('\n')

	switch {
	case errors.Is(err, bufio.ErrBufferFull):
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = that.in.ReadSlice('\n')
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}

		return "", fmt.Errorf("%w: over %d bytes", ErrLineTooLong, maxLineLength)
	case errors.Is(err, io.EOF):
		if len(line) == 0 {
			return "", io.EOF
		}
	case err != nil:
		return "", err
	}

	return strings.TrimRight(string(line), "\r\n"), nil
}

func (that *Server) dispatch(ctx context.Context, line string) error {
	command, args := splitCommand(line)
	if command == "" {
		return nil
	}

	h, ok := that.handlers[command]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	that.logger.Debug("command received", "command", command, "args", args)

	return h(ctx, args)
}

func (that *Server) render() {
	state := that.manager.State()
	first := state.ActiveColor
	if state.IsFinished() {
		first = state.Winner
	}

	that.print(that.renderer.Board(that.manager.Snapshot()))
	for _, color := range []entity.Color{first, first.Opposite()} {
		that.print(that.renderer.Inventory(color, that.manager.Inventory(color)))
	}
}

func (that *Server) print(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}

// describe reduces err to what the player needs to retry.
func describe(err error) string {
	for _, kind := range ruleErrors {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}

	return err.Error()
}
