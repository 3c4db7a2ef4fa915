package pong

import "image/color"

// ScoreEvent reports which side wall, if any, the ball hit during a move
type ScoreEvent byte

const (
	NoScore ScoreEvent = iota
	LeftWallHit
	RightWallHit
)

// Scorer returns the player awarded the point for e. The player on the
// opposite side of the wall that was hit scores.
func (e ScoreEvent) Scorer() (Side, bool) {
	switch e {
	case LeftWallHit:
		return Right, true
	case RightWallHit:
		return Left, true
	}
	return Left, false
}

func (e ScoreEvent) String() string {
	switch e {
	case LeftWallHit:
		return "left wall"
	case RightWallHit:
		return "right wall"
	}
	return "none"
}

// Ball is the match ball
type Ball struct {
	Center   Position
	Velocity Position
	Radius   int

	field Position
}

// NewBall creates a ball at center moving with velocity inside field.
func NewBall(center, velocity Position, radius int, field Position) *Ball {
	return &Ball{
		Center:   center,
		Velocity: velocity,
		Radius:   radius,
		field:    field,
	}
}

// Move advances the ball one frame, x axis first, then y.
//
// On each axis the ball reflects off the playfield edges. Touching the left
// or right edge ends the move and is reported as a score event. Otherwise,
// on the x axis only, a ball whose center lies inside a paddle it is moving
// towards has its horizontal velocity reflected. Collision is tested after
// the position update, so a fast ball can pass through a paddle.
func (b *Ball) Move(left, right *Paddle) ScoreEvent {
	for i := 0; i < 2; i++ {
		c, v := b.Center.axis(i), b.Velocity.axis(i)
		*c += *v

		if *c-b.Radius <= 0 || *c+b.Radius >= *b.field.axis(i) {
			*v = -*v
			if i == 0 {
				// velocity is already reversed
				if b.Velocity.X > 0 {
					return LeftWallHit
				}
				return RightWallHit
			}
			continue
		}

		if i != 0 {
			continue
		}
		if left.Rect().Contains(b.Center) && b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X
		} else if right.Rect().Contains(b.Center) && b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X
		}
	}
	return NoScore
}

// Draw draws the ball on the canvas.
func (b *Ball) Draw(c Canvas, clr color.Color) {
	c.FillCircle(b.Center.X, b.Center.Y, b.Radius, clr)
}
