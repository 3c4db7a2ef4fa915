package pong

import (
	"image/color"
)

// Position is a set of integer coordinates in the playfield
type Position struct {
	X int
	Y int
}

// axis returns a pointer to the X (0) or Y (1) component.
func (p *Position) axis(i int) *int {
	if i == 0 {
		return &p.X
	}
	return &p.Y
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, matching pixel rectangles.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Side identifies a player by the half of the playfield they defend
type Side byte

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// GameState is an enum that represents all possible match states
type GameState byte

const (
	PlayState GameState = iota
	GameOverState
)

var (
	BgColor  = color.Black
	ObjColor = color.White
)
