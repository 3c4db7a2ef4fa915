package pong

import "testing"

func TestInputController(t *testing.T) {
	tests := []struct {
		name      string
		events    []Event
		wantLeft  int
		wantRight int
	}{
		{"idle", nil, 0, 0},
		{"left up", []Event{Pressed(KeyLeftUp)}, -10, 0},
		{"left down", []Event{Pressed(KeyLeftDown)}, 10, 0},
		{"right up", []Event{Pressed(KeyRightUp)}, 0, -10},
		{"right down", []Event{Pressed(KeyRightDown)}, 0, 10},
		{"both players", []Event{Pressed(KeyLeftDown), Pressed(KeyRightUp)}, 10, -10},
		{"release", []Event{Pressed(KeyLeftUp), Released(KeyLeftUp)}, 0, 0},
		{"last press wins", []Event{Pressed(KeyLeftUp), Pressed(KeyLeftDown)}, 10, 0},
		{
			name:   "release up while down held",
			events: []Event{Pressed(KeyLeftDown), Pressed(KeyLeftUp), Released(KeyLeftUp)},
		},
		{
			name:   "release down while up held",
			events: []Event{Pressed(KeyRightUp), Pressed(KeyRightDown), Released(KeyRightDown)},
		},
		{
			name:      "release only affects own paddle",
			events:    []Event{Pressed(KeyLeftUp), Pressed(KeyRightDown), Released(KeyRightDown)},
			wantLeft:  -10,
			wantRight: 0,
		},
		{"close ignored", []Event{Pressed(KeyRightUp), CloseEvent()}, 0, -10},
		{"unknown key ignored", []Event{Pressed(KeyNone), Released(KeyNone)}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewInputController(PaddleStepSpeed)
			for _, e := range tt.events {
				c.Handle(e)
			}
			left, right := c.Velocities()
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("Velocities() = %d, %d; want %d, %d", left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}
