// Package terminal runs a game in a text terminal.
package terminal

import (
	"fmt"
	"io"

	"github.com/jtestard/classic-pong/pong"
	"golang.org/x/term"
)

// SizeFunc returns the terminal width and height in cells.
type SizeFunc func() (cols, rows int, err error)

// FdSize reports the size of the terminal open on fd.
func FdSize(fd int) SizeFunc {
	return func() (int, int, error) {
		return term.GetSize(fd)
	}
}

// Terminal is a pong.Frontend drawing with block characters and reading
// keys from a raw-mode input stream.
type Terminal struct {
	*Canvas
	w    io.Writer
	keys *Keys
	size SizeFunc
}

// New creates a terminal front end reading keys from r and drawing to w.
func New(r io.Reader, w io.Writer, size SizeFunc, field pong.Position) (*Terminal, error) {
	cols, rows, err := size()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}
	return &Terminal{
		Canvas: NewCanvas(w, field, cols, rows),
		w:      w,
		keys:   NewKeys(r),
		size:   size,
	}, nil
}

// PollEvents follows terminal resizes and returns the decoded key events.
func (t *Terminal) PollEvents() []pong.Event {
	if cols, rows, err := t.size(); err == nil {
		t.Resize(cols, rows)
	}
	return t.keys.Poll()
}

// Start hides the cursor and clears the screen.
func (t *Terminal) Start() {
	HideCursor(t.w)
	ClearScreen(t.w)
}

// Stop clears the screen and shows the cursor again.
func (t *Terminal) Stop() {
	ClearScreen(t.w)
	ShowCursor(t.w)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
