package player

import (
	"baghbandi/game"
	"baghbandi/gamemaster"
	"baghbandi/store"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const help = `commands:
  r,c          select (or put down) the piece on row r, column c
  r,c r,c      move a piece
  restart      start over with the same settings
  save         save the game
  quit         save and leave`

// Terminal lets a person play a session from a text console.
type Terminal struct {
	session *gamemaster.Session
	save    *store.File
	in      *bufio.Scanner
	out     io.Writer
}

// NewTerminal plays session reading commands from in. save may be nil.
func NewTerminal(session *gamemaster.Session, save *store.File, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		session: session,
		save:    save,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays until the input ends or the player quits.
func (t *Terminal) Run() error {
	t.render()
	for {
		if t.session.AITurn() {
			if err := t.respond(); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(t.out, "> ")
		if !t.in.Scan() {
			fmt.Fprintln(t.out)
			return t.store()
		}
		quit, err := t.handle(strings.TrimSpace(t.in.Text()))
		if err != nil {
			return err
		}
		if quit {
			return t.store()
		}
	}
}

func (t *Terminal) respond() error {
	fmt.Fprintln(t.out, "computer is thinking...")
	applied, err := t.session.Respond()
	if err != nil {
		return fmt.Errorf("computer move: %w", err)
	}
	fmt.Fprintf(t.out, "computer played %v\n", applied.Move)
	t.render()
	return nil
}

func (t *Terminal) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return true, nil
	case "help", "h", "?":
		fmt.Fprintln(t.out, help)
		return false, nil
	case "restart":
		t.session.Restart()
		t.render()
		return false, nil
	case "save":
		return false, t.store()
	}

	points := make([]game.Point, 0, len(fields))
	for _, field := range fields {
		p, err := parsePoint(field)
		if err != nil {
			fmt.Fprintf(t.out, "%v (type help for commands)\n", err)
			return false, nil
		}
		points = append(points, p)
	}

	switch len(points) {
	case 1:
		t.report(t.session.Select(points[0]))
	case 2:
		t.move(points[0], points[1])
	default:
		fmt.Fprintln(t.out, "expected one or two points")
		return false, nil
	}
	t.render()
	return false, nil
}

func (t *Terminal) move(from, to game.Point) {
	if selected, _, ok := t.session.Selected(); !ok || selected != from {
		if err := t.session.Select(from); err != nil {
			t.report(err)
			return
		}
	}
	applied, err := t.session.Apply(from, to)
	if err != nil {
		t.report(err)
		return
	}
	if applied.Captured {
		fmt.Fprintln(t.out, "captured!")
	}
}

func (t *Terminal) report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, gamemaster.ErrInvalidSelection):
		fmt.Fprintln(t.out, "pick one of your own pieces")
	case errors.Is(err, gamemaster.ErrIllegalMove):
		fmt.Fprintln(t.out, "that piece cannot move there")
	default:
		fmt.Fprintln(t.out, err)
	}
}

// store keeps an unfinished game and drops a finished one.
func (t *Terminal) store() error {
	if t.save == nil {
		return nil
	}
	if t.session.Result().Over() {
		return t.save.Remove()
	}
	if err := t.save.Save(t.session.Export()); err != nil {
		return err
	}
	log.Info().Msgf("game saved to %s", t.save.Path)
	return nil
}

func (t *Terminal) render() {
	state := t.session.State()
	selected, options, isSelected := t.session.Selected()

	var sb strings.Builder
	sb.WriteString("   0 1 2 3 4\n")
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < game.Size; c++ {
			p := game.Point{Row: r, Col: c}
			cell := state.Board.At(p).String()
			switch {
			case isSelected && p == selected:
				cell = "*"
			case isSelected && options.Allows(p):
				cell = "o"
			}
			sb.WriteString(" " + cell)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(t.out, sb.String())

	switch result := state.Result; {
	case result.Over():
		fmt.Fprintf(t.out, "side %s wins by %s (restart or quit)\n", result.Winner, result.Reason)
	case state.Chaining():
		fmt.Fprintf(t.out, "side %s must keep capturing with %v\n", state.ToMove, *state.ChainFrom)
	default:
		fmt.Fprintf(t.out, "side %s to move\n", state.ToMove)
	}
}

func parsePoint(s string) (game.Point, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return game.Point{}, fmt.Errorf("bad point %q", s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return game.Point{}, fmt.Errorf("bad row in %q", s)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return game.Point{}, fmt.Errorf("bad column in %q", s)
	}
	p := game.Point{Row: r, Col: c}
	if !p.InBounds() {
		return game.Point{}, fmt.Errorf("%v is off the board", p)
	}
	return p, nil
}
