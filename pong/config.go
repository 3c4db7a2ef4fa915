package pong

import "time"

// Game configuration constants.
// All fixed game parameters are centralized here.

// Playfield
const (
	PlayfieldWidth  = 500
	PlayfieldHeight = 400
)

// Paddles
const (
	PaddleWidth     = 10
	PaddleHeight    = 100
	LeftPaddleX     = 100
	RightPaddleX    = 390
	InitPaddleY     = 150
	PaddleStepSpeed = 10 // pixels per frame
)

// Ball
const (
	BallRadius     = 5
	InitBallX      = 250
	InitBallY      = 200
	InitBallXSpeed = 6
	InitBallYSpeed = 2
)

// Scoring
const (
	// ScoreLimit is the highest score a match can continue at; the match is
	// over once either player goes past it.
	ScoreLimit = 10
)

// Presentation
const (
	ScoreFontSize = 50
	WindowTitle   = "Mini-project 2 - Pong"
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Rules bundles the parameters a Match is built from.
type Rules struct {
	Field      Position
	LeftX      int
	RightX     int
	PaddleY    int
	PaddleStep int
	BallCenter Position
	BallSpeed  Position
	BallRadius int
	ScoreLimit int
	FrameTime  time.Duration
}

// DefaultRules returns the classic match setup.
func DefaultRules() Rules {
	return Rules{
		Field:      Position{X: PlayfieldWidth, Y: PlayfieldHeight},
		LeftX:      LeftPaddleX,
		RightX:     RightPaddleX,
		PaddleY:    InitPaddleY,
		PaddleStep: PaddleStepSpeed,
		BallCenter: Position{X: InitBallX, Y: InitBallY},
		BallSpeed:  Position{X: InitBallXSpeed, Y: InitBallYSpeed},
		BallRadius: BallRadius,
		ScoreLimit: ScoreLimit,
		FrameTime:  TargetFrameTime,
	}
}
