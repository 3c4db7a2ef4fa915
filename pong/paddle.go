package pong

import "image/color"

// Paddle is one player's bat. X is fixed for the whole match; Y is the top edge.
type Paddle struct {
	Position
	Velocity int
	Width    int
	Height   int

	fieldHeight int
}

// NewPaddle creates a stationary paddle with its top-left corner at (x, y)
// inside a playfield of the given height.
func NewPaddle(x, y, fieldHeight int) *Paddle {
	return &Paddle{
		Position:    Position{X: x, Y: y},
		Width:       PaddleWidth,
		Height:      PaddleHeight,
		fieldHeight: fieldHeight,
	}
}

// SetVelocity sets the vertical speed used by the next Move.
func (p *Paddle) SetVelocity(v int) {
	p.Velocity = v
}

// Move advances the paddle by its velocity and returns the new top edge.
// A step that would leave the playfield zeroes the velocity instead, so the
// paddle stops short of the edge rather than snapping onto it.
func (p *Paddle) Move() int {
	if p.Y+p.Velocity < 0 || p.Y+p.Height+p.Velocity > p.fieldHeight {
		p.Velocity = 0
	}
	p.Y += p.Velocity
	return p.Y
}

// Rect returns the paddle's current collision rectangle.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw draws the paddle on the canvas.
func (p *Paddle) Draw(c Canvas, clr color.Color) {
	c.FillRect(p.X, p.Y, p.Width, p.Height, clr)
}
