package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/gobblet/internal/entity"
	"github.com/rocketscienceinc/gobblet/internal/gobblet"
)

const (
	rowLabelWidth = 3
	cellWidth     = 6
	emptyCell     = ".."
)

// Renderer turns match views into terminal text. Colors and sizes are mapped
// to glyphs here only; the rules never see them.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer writes styles suited to w. With colors off every style is dropped.
func NewRenderer(w io.Writer, colors bool) *Renderer {
	var opts []termenv.OutputOption
	if !colors {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		output: termenv.NewOutput(w, opts...),
	}
}

// Board draws the exposed token of every cell, with the number of hidden tokens beneath it.
//
//	   0     1     2
//	0  RB+1  ..    GS
func (that *Renderer) Board(snapshot entity.Snapshot) string {
	lines := make([]string, 0, entity.BoardSize+1)

	header := strings.Repeat(" ", rowLabelWidth)
	for x := range entity.BoardSize {
		header += pad(strconv.Itoa(x), cellWidth)
	}
	lines = append(lines, strings.TrimRight(header, " "))

	for y := range entity.BoardSize {
		line := pad(strconv.Itoa(y), rowLabelWidth)
		for x := range entity.BoardSize {
			line += that.cell(snapshot[y][x])
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (that *Renderer) Inventory(color entity.Color, inventory entity.Inventory) string {
	name := color.String()

	return fmt.Sprintf("%s%s small %d  mid %d  big %d\n",
		that.colored(color, name).String(), strings.Repeat(" ", 6-len(name)),
		inventory.Remaining(entity.Small), inventory.Remaining(entity.Mid), inventory.Remaining(entity.Big))
}

func (that *Renderer) State(state gobblet.State) string {
	if state.IsFinished() {
		return fmt.Sprintf("winner: %s after %d turns\n", that.colored(state.Winner, state.Winner.String()), state.Turns)
	}

	return fmt.Sprintf("turn: %s\n", that.colored(state.ActiveColor, state.ActiveColor.String()))
}

func (that *Renderer) Moves(moves []gobblet.Move) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d legal moves\n", len(moves))
	for _, move := range moves {
		b.WriteString("  " + move.String() + "\n")
	}

	return b.String()
}

func (that *Renderer) cell(stack []entity.Token) string {
	if len(stack) == 0 {
		return pad(emptyCell, cellWidth)
	}

	top := stack[len(stack)-1]
	label := tokenLabel(top)

	hidden := ""
	if len(stack) > 1 {
		hidden = "+" + strconv.Itoa(len(stack)-1)
	}

	return that.token(top, label) + pad(hidden, cellWidth-len(label))
}

func (that *Renderer) token(token entity.Token, label string) string {
	style := that.colored(token.Color, label)

	switch token.Size {
	case entity.Big:
		style = style.Bold()
	case entity.Small:
		style = style.Faint()
	}

	return style.String()
}

func (that *Renderer) colored(color entity.Color, s string) termenv.Style {
	style := that.output.String(s)

	switch color {
	case entity.Red:
		return style.Foreground(that.output.Color("1"))
	case entity.Green:
		return style.Foreground(that.output.Color("2"))
	default:
		return style
	}
}

// tokenLabel is a two letter glyph: color initial then size initial, e.g. "RB".
func tokenLabel(token entity.Token) string {
	return strings.ToUpper(token.Color.String()[:1] + token.Size.String()[:1])
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
