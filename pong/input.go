package pong

// Key is a front-end independent identifier for the four game keys
type Key byte

const (
	KeyNone Key = iota
	KeyLeftUp
	KeyLeftDown
	KeyRightUp
	KeyRightDown
)

func (k Key) String() string {
	switch k {
	case KeyLeftUp:
		return "left-up"
	case KeyLeftDown:
		return "left-down"
	case KeyRightUp:
		return "right-up"
	case KeyRightDown:
		return "right-down"
	}
	return "none"
}

// EventKind is the type of an input event
type EventKind byte

const (
	KeyDown EventKind = iota
	KeyUp
	Close
)

// Event is a single input event delivered by a front end.
type Event struct {
	Kind EventKind
	Key  Key
}

// Pressed returns a key-down event for k.
func Pressed(k Key) Event { return Event{Kind: KeyDown, Key: k} }

// Released returns a key-up event for k.
func Released(k Key) Event { return Event{Kind: KeyUp, Key: k} }

// CloseEvent returns a window-close event.
func CloseEvent() Event { return Event{Kind: Close} }

// InputController turns key events into paddle velocity intents.
//
// Each paddle remembers only the most recent event: releasing either of its
// keys stops it, even if the other key is still held.
type InputController struct {
	step  int
	left  int
	right int
}

// NewInputController creates a controller that moves paddles step pixels per frame.
func NewInputController(step int) *InputController {
	return &InputController{step: step}
}

// Handle applies a key event. Close events are ignored.
func (c *InputController) Handle(e Event) {
	switch e.Kind {
	case KeyDown:
		c.KeyDown(e.Key)
	case KeyUp:
		c.KeyUp(e.Key)
	}
}

// KeyDown starts moving the paddle the key belongs to.
func (c *InputController) KeyDown(k Key) {
	switch k {
	case KeyLeftUp:
		c.left = -c.step
	case KeyLeftDown:
		c.left = c.step
	case KeyRightUp:
		c.right = -c.step
	case KeyRightDown:
		c.right = c.step
	}
}

// KeyUp stops the paddle the key belongs to.
func (c *InputController) KeyUp(k Key) {
	switch k {
	case KeyLeftUp, KeyLeftDown:
		c.left = 0
	case KeyRightUp, KeyRightDown:
		c.right = 0
	}
}

// Velocities returns the current intents for the left and right paddles.
func (c *InputController) Velocities() (left, right int) {
	return c.left, c.right
}
