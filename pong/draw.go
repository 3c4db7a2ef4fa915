package pong

import (
	"image/color"
	"strconv"
)

// Canvas is the drawing surface a front end provides. Coordinates are
// playfield units with the origin at the top-left corner.
type Canvas interface {
	Fill(clr color.Color)
	FillCircle(x, y, r int, clr color.Color)
	FillRect(x, y, w, h int, clr color.Color)
	// DrawText renders s with its top-left corner at (x, y).
	DrawText(s string, x, y int, clr color.Color)
	TextSize(s string) (w, h int)
	// Present shows the completed frame.
	Present() error
}

// Presenter draws a match onto a Canvas.
type Presenter struct {
	Background color.Color
	Foreground color.Color
}

// NewPresenter returns a presenter using the default colors.
func NewPresenter() Presenter {
	return Presenter{Background: BgColor, Foreground: ObjColor}
}

// Draw draws the whole frame and presents it.
func (p Presenter) Draw(c Canvas, m *Match) error {
	c.Fill(p.Background)
	m.Ball.Draw(c, p.Foreground)
	m.LeftPaddle.Draw(c, p.Foreground)
	m.RightPaddle.Draw(c, p.Foreground)
	p.DrawScores(c, m)
	p.DrawBigText(c, m)
	return c.Present()
}

// DrawScores shows the left player's score in the top-left corner and the
// right player's score in the top-right corner.
func (p Presenter) DrawScores(c Canvas, m *Match) {
	c.DrawText(strconv.Itoa(m.LeftScore), 0, 0, p.Foreground)

	right := strconv.Itoa(m.RightScore)
	w, _ := c.TextSize(right)
	c.DrawText(right, m.Rules().Field.X-w, 0, p.Foreground)
}

// DrawBigText announces the winner once the match is over.
func (p Presenter) DrawBigText(c Canvas, m *Match) {
	side, ok := m.Winner()
	if !ok {
		return
	}
	msg := "LEFT PLAYER WINS"
	if side == Right {
		msg = "RIGHT PLAYER WINS"
	}
	w, h := c.TextSize(msg)
	field := m.Rules().Field
	c.DrawText(msg, (field.X-w)/2, (field.Y-h)/2, p.Foreground)
}
