// Package display runs a game in a desktop window.
package display

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/jtestard/classic-pong/fonts"
	"github.com/jtestard/classic-pong/pong"
)

// ErrClosed unwinds the ebiten loop once the game has seen a close event.
var ErrClosed = errors.New("display: window closed")

// keys lists the bindings in the order events are reported within a frame.
var keys = []struct {
	key  ebiten.Key
	game pong.Key
}{
	{ebiten.KeyQ, pong.KeyLeftUp},
	{ebiten.KeyA, pong.KeyLeftDown},
	{ebiten.KeyP, pong.KeyRightUp},
	{ebiten.KeyL, pong.KeyRightDown},
}

// Window adapts a pong.Game to ebiten.
type Window struct {
	game   *pong.Game
	canvas *Canvas
	logger *log.Logger
}

// NewWindow prepares a window for g. Nothing is shown until Run is called.
func NewWindow(g *pong.Game, logger *log.Logger) (*Window, error) {
	face, err := fonts.ScoreFace(pong.ScoreFontSize)
	if err != nil {
		return nil, err
	}
	return &Window{
		game:   g,
		canvas: NewCanvas(face),
		logger: logger,
	}, nil
}

// PollEvents returns the key transitions of the current frame.
func (w *Window) PollEvents() []pong.Event {
	var events []pong.Event
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			events = append(events, pong.Pressed(k.game))
		}
		if inpututil.IsKeyJustReleased(k.key) {
			events = append(events, pong.Released(k.game))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, pong.CloseEvent())
	}
	return events
}

// Update runs one frame of the game
func (w *Window) Update(screen *ebiten.Image) error {
	w.canvas.SetTarget(screen)
	if err := w.game.Tick(w.PollEvents(), w.canvas); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	if w.game.Closed() {
		return ErrClosed
	}
	return nil
}

// Layout sets the screen layout
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := w.game.Rules().Field
	return field.X, field.Y
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	rules := w.game.Rules()
	tps := int(time.Second / rules.FrameTime)
	ebiten.SetWindowSize(rules.Field.X, rules.Field.Y)
	ebiten.SetWindowTitle(pong.WindowTitle)
	ebiten.SetMaxTPS(tps)
	ebiten.SetRunnableOnUnfocused(true)

	w.logger.Info("opening window", "width", rules.Field.X, "height", rules.Field.Y, "tps", tps)
	err := ebiten.RunGame(w)
	if errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}
