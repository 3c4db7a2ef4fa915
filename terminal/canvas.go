package terminal

import (
	"bytes"
	"image/color"
	"io"

	"github.com/jtestard/classic-pong/pong"
)

// Block characters for drawing.
const (
	BlockFull  = '█'
	BlockEmpty = ' '
	BallRune   = '●'
)

// Canvas maps playfield coordinates onto a grid of terminal cells.
type Canvas struct {
	w     io.Writer
	field pong.Position
	cols  int
	rows  int
	cells []rune
	bg    color.RGBA
	frame bytes.Buffer
}

// NewCanvas creates a canvas showing a playfield of the given size on a
// cols×rows terminal.
func NewCanvas(w io.Writer, field pong.Position, cols, rows int) *Canvas {
	c := &Canvas{w: w, field: field}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal grid size. The content is cleared.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]rune, cols*rows)
	c.clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) clear() {
	for i := range c.cells {
		c.cells[i] = BlockEmpty
	}
}

func (c *Canvas) col(x int) int {
	return floorDiv(x*c.cols, c.field.X)
}

func (c *Canvas) row(y int) int {
	return floorDiv(y*c.rows, c.field.Y)
}

func (c *Canvas) set(col, row int, ch rune) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = ch
}

// ink returns ch, or a blank when clr is the background color.
func (c *Canvas) ink(clr color.Color, ch rune) rune {
	if color.RGBAModel.Convert(clr).(color.RGBA) == c.bg {
		return BlockEmpty
	}
	return ch
}

func (c *Canvas) fillCells(x0, y0, x1, y1 int, ch rune) {
	for row := c.row(y0); row <= c.row(y1); row++ {
		for col := c.col(x0); col <= c.col(x1); col++ {
			c.set(col, row, ch)
		}
	}
}

func (c *Canvas) Fill(clr color.Color) {
	c.bg = color.RGBAModel.Convert(clr).(color.RGBA)
	c.clear()
}

func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fillCells(x, y, x+w-1, y+h-1, c.ink(clr, BlockFull))
}

// FillCircle marks the cell holding the circle's center.
func (c *Canvas) FillCircle(x, y, r int, clr color.Color) {
	c.set(c.col(x), c.row(y), c.ink(clr, BallRune))
}

func (c *Canvas) DrawText(s string, x, y int, clr color.Color) {
	col, row := c.col(x), c.row(y)
	for _, ch := range s {
		c.set(col, row, c.ink(clr, ch))
		col++
	}
}

// TextSize returns the playfield area covered by s, one cell per rune.
func (c *Canvas) TextSize(s string) (int, int) {
	n := len([]rune(s))
	return ceilDiv(n*c.field.X, c.cols), ceilDiv(c.field.Y, c.rows)
}

// Present writes the grid to the terminal in a single write.
func (c *Canvas) Present() error {
	c.frame.Reset()
	c.frame.WriteString("\033[H")
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			c.frame.WriteString("\r\n")
		}
		for _, ch := range c.cells[row*c.cols : (row+1)*c.cols] {
			c.frame.WriteRune(ch)
		}
	}
	_, err := c.w.Write(c.frame.Bytes())
	return err
}

// Line returns the content of one row, for inspection.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.rows {
		return ""
	}
	return string(c.cells[row*c.cols : (row+1)*c.cols])
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
