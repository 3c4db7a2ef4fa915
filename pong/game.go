package pong

import (
	"io"

	"github.com/charmbracelet/log"
)

// Game is the structure owning everything one running match needs: the
// match state, the input controller and the presenter.
type Game struct {
	match     *Match
	input     *InputController
	presenter Presenter
	logger    *log.Logger
	rules     Rules
	frame     uint64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for match events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRules replaces the default rules.
func WithRules(r Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithPresenter replaces the default presenter.
func WithPresenter(p Presenter) Option {
	return func(g *Game) {
		g.presenter = p
	}
}

// NewGame creates and initializes a new game
func NewGame(opts ...Option) *Game {
	g := &Game{
		rules:     DefaultRules(),
		presenter: NewPresenter(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.match = NewMatch(g.rules)
	g.input = NewInputController(g.rules.PaddleStep)
	return g
}

// HandleEvents applies the events polled for this frame.
func (g *Game) HandleEvents(events []Event) {
	for _, e := range events {
		if e.Kind == Close {
			if !g.match.CloseRequested() {
				g.logger.Info("close requested", "frame", g.frame)
			}
			g.match.RequestClose()
			continue
		}
		g.input.Handle(e)
	}
}

// Update runs one simulation step. It is a no-op once the match is over.
func (g *Game) Update() {
	g.frame++
	if !g.match.Continue() {
		return
	}

	ev := g.match.Update(g.input.Velocities())
	if side, ok := ev.Scorer(); ok {
		g.logger.Debug("point scored",
			"wall", ev, "scorer", side,
			"left", g.match.LeftScore, "right", g.match.RightScore)
	}
	if winner, over := g.match.Winner(); over {
		g.logger.Info("match over",
			"winner", winner,
			"left", g.match.LeftScore, "right", g.match.RightScore,
			"frame", g.frame)
	}
}

// Draw renders the current state onto c.
func (g *Game) Draw(c Canvas) error {
	return g.presenter.Draw(c, g.match)
}

// Tick runs one full frame: input, update, then draw.
func (g *Game) Tick(events []Event, c Canvas) error {
	g.HandleEvents(events)
	g.Update()
	return g.Draw(c)
}

// Closed reports whether the game has seen a close signal.
func (g *Game) Closed() bool {
	return g.match.CloseRequested()
}

// Match returns the match being played.
func (g *Game) Match() *Match {
	return g.match
}

// Input returns the game's input controller.
func (g *Game) Input() *InputController {
	return g.input
}

// Rules returns the rules the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}
