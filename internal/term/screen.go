package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"grid-snake/internal/loop"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Screen owns a terminal switched into raw mode.
type Screen struct {
	fd  int
	out io.Writer
	old *xterm.State
}

// Open puts in into raw mode. Close restores it.
func Open(in *os.File, out io.Writer) (*Screen, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("open %s: %w", in.Name(), ErrNotTerminal)
	}
	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	s := &Screen{fd: fd, out: out, old: old}
	fmt.Fprint(out, hideCursor)
	return s, nil
}

// FrameSize returns the columns and rows a Frame for an n*n board needs.
func FrameSize(n int) (w, h int) {
	// Board, two borders and two status lines.
	return 2*n + 3, n + 4
}

// Fits reports whether a frame for an n*n board fits the terminal on f. It
// does not need raw mode, so callers can warn before calling Open.
func Fits(f *os.File, n int) (bool, error) {
	cols, rows, err := xterm.GetSize(int(f.Fd()))
	if err != nil {
		return false, err
	}
	w, h := FrameSize(n)
	return cols >= w && rows >= h, nil
}

// Draw replaces the screen contents with frame.
func (s *Screen) Draw(frame string) {
	io.WriteString(s.out, clearScreen+frame)
}

// Close restores the terminal state.
func (s *Screen) Close() error {
	fmt.Fprint(s.out, showCursor)
	return xterm.Restore(s.fd, s.old)
}

// ReadCommands decodes input from r into out until r fails. io.EOF is not
// reported as an error.
func ReadCommands(r io.Reader, out chan<- loop.Command) error {
	var dec Decoder
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, cmd := range dec.Decode(buf[:n]) {
			out <- cmd
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
