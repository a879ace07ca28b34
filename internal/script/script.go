// Package script replays recorded board gestures. A script has one command
// per line:
//
//	tool rectangle
//	color red
//	filled on
//	down 10 10
//	move 60 40
//	up 60 40
//	type "hello world"
//	key enter
//	commit
//	undo
//	redo
//
// Arguments are split like a shell would, so quoted text keeps its spaces.
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/mobile/event/key"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/shape"
)

var (
	// ErrUnknownCommand is returned for a command name the runner lacks.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgs is returned when a command has the wrong arguments.
	ErrArgs = errors.New("bad arguments")
)

// Command is one parsed script line.
type Command struct {
	Line int
	Name string
	Args []string
}

// String returns the command in script syntax.
func (c Command) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'\\") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Parse reads every command from r.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shellwords.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(args) == 0 {
			continue
		}
		cmds = append(cmds, Command{Line: line, Name: strings.ToLower(args[0]), Args: args[1:]})
	}
	return cmds, scanner.Err()
}

// Run executes cmds against b in order and stops at the first failure.
func Run(b *board.Board, cmds []Command) error {
	for _, c := range cmds {
		if err := Exec(b, c); err != nil {
			return fmt.Errorf("line %d: %s: %w", c.Line, c.Name, err)
		}
	}
	return nil
}

// Exec applies a single command to b.
func Exec(b *board.Board, c Command) error {
	switch c.Name {
	case "tool":
		if err := want(c, 1); err != nil {
			return err
		}
		t, err := board.ParseTool(c.Args[0])
		if err != nil {
			return err
		}
		b.SetTool(t)
	case "color", "colour":
		if err := want(c, 1); err != nil {
			return err
		}
		col, err := shape.ParseColor(c.Args[0])
		if err != nil {
			return err
		}
		st := b.Style()
		st.Color = col
		b.SetStyle(st)
	case "filled":
		if err := want(c, 1); err != nil {
			return err
		}
		on, err := parseSwitch(c.Args[0])
		if err != nil {
			return err
		}
		st := b.Style()
		st.Filled = on
		b.SetStyle(st)
	case "down", "move", "up":
		x, y, err := point(c)
		if err != nil {
			return err
		}
		switch c.Name {
		case "down":
			return b.PointerDown(x, y)
		case "move":
			_, err = b.PointerMove(x, y)
			return err
		default:
			return b.PointerUp(x, y)
		}
	case "type":
		for _, r := range strings.Join(c.Args, " ") {
			b.TypeRune(r)
		}
	case "key":
		if err := want(c, 1); err != nil {
			return err
		}
		e, err := ParseKey(c.Args[0])
		if err != nil {
			return err
		}
		if b.State() == board.StateWriting {
			_, err = b.HandleTextKey(e)
			return err
		}
		b.HandleKey(board.ShortcutFromEvent(e))
	case "commit":
		return b.CommitText()
	case "undo":
		b.Undo()
	case "redo":
		b.Redo()
	default:
		return ErrUnknownCommand
	}
	return nil
}

// ParseKey turns names like "enter", "backspace" or "ctrl+shift+z" into a
// key press.
func ParseKey(s string) (key.Event, error) {
	e := key.Event{Direction: key.DirPress}
	parts := strings.Split(strings.ToLower(s), "+")
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl", "control":
			e.Modifiers |= key.ModControl
		case "shift":
			e.Modifiers |= key.ModShift
		case "alt":
			e.Modifiers |= key.ModAlt
		case "meta", "cmd", "super":
			e.Modifiers |= key.ModMeta
		default:
			return e, fmt.Errorf("%w: modifier %q", ErrArgs, mod)
		}
	}
	name := parts[len(parts)-1]
	switch name {
	case "enter", "return":
		e.Code = key.CodeReturnEnter
	case "escape", "esc":
		e.Code = key.CodeEscape
	case "backspace":
		e.Code = key.CodeDeleteBackspace
	case "space":
		e.Code, e.Rune = key.CodeSpacebar, ' '
	default:
		r := []rune(name)
		if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
			return e, fmt.Errorf("%w: key %q", ErrArgs, s)
		}
		e.Rune = r[0]
		e.Code = key.CodeA + key.Code(r[0]-'a')
	}
	return e, nil
}

func want(c Command, n int) error {
	if len(c.Args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrArgs, n, len(c.Args))
	}
	return nil
}

func point(c Command) (float64, float64, error) {
	if err := want(c, 2); err != nil {
		return 0, 0, err
	}
	x, err := strconv.ParseFloat(c.Args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x: %v", ErrArgs, err)
	}
	y, err := strconv.ParseFloat(c.Args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y: %v", ErrArgs, err)
	}
	if !finite(x) || !finite(y) {
		return 0, 0, fmt.Errorf("%w: coordinates must be finite, got %v %v", ErrArgs, x, y)
	}
	return x, y, nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not on or off", ErrArgs, s)
	}
	return b, nil
}
