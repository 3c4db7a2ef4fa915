package pong

// Match holds the full state of one match: both paddles, the ball, the
// scores and the two lifecycle flags.
type Match struct {
	LeftPaddle  *Paddle
	RightPaddle *Paddle
	Ball        *Ball
	LeftScore   int
	RightScore  int

	rules          Rules
	continueGame   bool
	closeRequested bool
}

// NewMatch creates a match in its starting position.
func NewMatch(r Rules) *Match {
	return &Match{
		LeftPaddle:   NewPaddle(r.LeftX, r.PaddleY, r.Field.Y),
		RightPaddle:  NewPaddle(r.RightX, r.PaddleY, r.Field.Y),
		Ball:         NewBall(r.BallCenter, r.BallSpeed, r.BallRadius, r.Field),
		rules:        r,
		continueGame: true,
	}
}

// Update runs one simulation step with the given paddle velocity intents and
// returns the score event it produced. It does nothing once the match is over.
func (m *Match) Update(leftVelocity, rightVelocity int) ScoreEvent {
	if !m.continueGame {
		return NoScore
	}

	m.LeftPaddle.SetVelocity(leftVelocity)
	m.RightPaddle.SetVelocity(rightVelocity)
	m.LeftPaddle.Move()
	m.RightPaddle.Move()

	ev := m.Ball.Move(m.LeftPaddle, m.RightPaddle)
	if side, ok := ev.Scorer(); ok {
		if side == Left {
			m.LeftScore++
		} else {
			m.RightScore++
		}
	}

	m.decideContinue()
	return ev
}

func (m *Match) decideContinue() {
	if m.LeftScore > m.rules.ScoreLimit || m.RightScore > m.rules.ScoreLimit {
		m.continueGame = false
	}
}

// Continue reports whether the simulation is still running.
func (m *Match) Continue() bool {
	return m.continueGame
}

// State returns the match state enum.
func (m *Match) State() GameState {
	if m.continueGame {
		return PlayState
	}
	return GameOverState
}

// Winner returns the side that won the match, if it is over.
func (m *Match) Winner() (Side, bool) {
	if m.continueGame {
		return Left, false
	}
	if m.LeftScore > m.RightScore {
		return Left, true
	}
	return Right, true
}

// Score returns the points earned by side.
func (m *Match) Score(side Side) int {
	if side == Left {
		return m.LeftScore
	}
	return m.RightScore
}

// RequestClose marks the match for shutdown. It cannot be undone.
func (m *Match) RequestClose() {
	m.closeRequested = true
}

// CloseRequested reports whether a close signal has been received.
func (m *Match) CloseRequested() bool {
	return m.closeRequested
}

// Rules returns the rules the match was created with.
func (m *Match) Rules() Rules {
	return m.rules
}
