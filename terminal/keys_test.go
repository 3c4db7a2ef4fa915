package terminal

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jtestard/classic-pong/pong"
)

func equalEvents(t *testing.T, got, want []pong.Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got events %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestKeysDecode(t *testing.T) {
	t0 := time.Unix(0, 0)
	k := newKeys(nil, 100*time.Millisecond, 100*time.Millisecond, nil)

	equalEvents(t, k.decode([]byte("qP"), false, t0), []pong.Event{
		pong.Pressed(pong.KeyLeftUp),
		pong.Pressed(pong.KeyRightUp),
	})

	// auto-repeat keeps the key held without new presses
	equalEvents(t, k.decode([]byte("qqq"), false, t0.Add(50*time.Millisecond)), nil)

	equalEvents(t, k.decode(nil, false, t0.Add(120*time.Millisecond)), []pong.Event{
		pong.Released(pong.KeyRightUp),
	})
	equalEvents(t, k.decode(nil, false, t0.Add(150*time.Millisecond)), []pong.Event{
		pong.Released(pong.KeyLeftUp),
	})

	equalEvents(t, k.decode([]byte("A"), false, t0.Add(200*time.Millisecond)), []pong.Event{
		pong.Pressed(pong.KeyLeftDown),
	})
}

func TestKeysDecodeControl(t *testing.T) {
	tests := []struct {
		name string
		in   string
		eof  bool
		want []pong.Event
	}{
		{"ctrl-c", "\x03", false, []pong.Event{pong.CloseEvent()}},
		{"ctrl-d", "\x04", false, []pong.Event{pong.CloseEvent()}},
		{"escape", "\x1b", false, []pong.Event{pong.CloseEvent()}},
		{"escape at eof", "\x1b", true, []pong.Event{pong.CloseEvent(), pong.CloseEvent()}},
		{"escape then key", "\x1bq", false, []pong.Event{pong.CloseEvent(), pong.Pressed(pong.KeyLeftUp)}},
		{"arrow key ignored", "\x1b[A", false, nil},
		{"application mode arrow ignored", "\x1bOA", false, nil},
		{"modified arrow ignored", "\x1b[1;5C", false, nil},
		{"truncated sequence dropped", "\x1b[1;", false, nil},
		{"arrow then key", "\x1b[Bl", false, []pong.Event{pong.Pressed(pong.KeyRightDown)}},
		{"other bytes ignored", "xyz 1", false, nil},
		{"eof", "", true, []pong.Event{pong.CloseEvent()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newKeys(nil, KeyHold, FirstRepeatHold, nil)
			t0 := time.Unix(0, 0)
			got := k.decode([]byte(tt.in), tt.eof, t0)
			// a following poll with no input settles anything held back
			got = append(got, k.decode(nil, false, t0.Add(time.Millisecond))...)
			equalEvents(t, got, tt.want)
		})
	}
}

func TestKeysEscapeSplitAcrossPolls(t *testing.T) {
	t0 := time.Unix(0, 0)
	for _, parts := range [][]string{
		{"\x1b", "[A"},
		{"\x1b[", "A"},
		{"\x1b", "OB"},
		{"\x1bO", "B"},
		{"\x1b[1;", "5D"},
	} {
		k := newKeys(nil, KeyHold, FirstRepeatHold, nil)
		var got []pong.Event
		for i, p := range parts {
			got = append(got, k.decode([]byte(p), false, t0.Add(time.Duration(i)*time.Millisecond))...)
		}
		got = append(got, k.decode(nil, false, t0.Add(10*time.Millisecond))...)
		if len(got) != 0 {
			t.Errorf("%q: got events %+v, want none", parts, got)
		}
	}
}

// feed replays a byte every step starting at from, polling after each one,
// and reports the left paddle velocity seen after every poll.
type feed struct {
	k     *Keys
	input *pong.InputController
}

func newFeed() *feed {
	return &feed{
		k:     newKeys(nil, KeyHold, FirstRepeatHold, nil),
		input: pong.NewInputController(pong.PaddleStepSpeed),
	}
}

func (f *feed) poll(b string, at time.Duration) int {
	for _, e := range f.k.decode([]byte(b), false, time.Unix(0, 0).Add(at)) {
		f.input.Handle(e)
	}
	left, _ := f.input.Velocities()
	return left
}

func TestKeysSwitchDirectionWhileHeld(t *testing.T) {
	f := newFeed()
	step := 30 * time.Millisecond

	f.poll("q", 0)
	if v := f.poll("q", step); v != -pong.PaddleStepSpeed {
		t.Fatalf("holding Q: left velocity = %d, want %d", v, -pong.PaddleStepSpeed)
	}
	for at := 2 * step; at <= 600*time.Millisecond; at += step {
		if v := f.poll("a", at); v != pong.PaddleStepSpeed {
			t.Fatalf("t=%v holding A: left velocity = %d, want %d", at, v, pong.PaddleStepSpeed)
		}
	}
}

func TestKeysSwitchReleasesBeforePress(t *testing.T) {
	k := newKeys(nil, KeyHold, FirstRepeatHold, nil)
	t0 := time.Unix(0, 0)

	k.decode([]byte("pl"), false, t0)
	equalEvents(t, k.decode([]byte("p"), false, t0.Add(time.Millisecond)), []pong.Event{
		pong.Released(pong.KeyRightDown),
		pong.Pressed(pong.KeyRightUp),
	})
}

func TestKeysFirstRepeatGap(t *testing.T) {
	f := newFeed()
	ms := time.Millisecond

	f.poll("a", 0)
	// the terminal waits before repeating; the key stays held meanwhile
	for at := 30 * ms; at < 450*ms; at += 30 * ms {
		if v := f.poll("", at); v != pong.PaddleStepSpeed {
			t.Fatalf("t=%v before repeat: left velocity = %d, want %d", at, v, pong.PaddleStepSpeed)
		}
	}
	for at := 450 * ms; at <= 900*ms; at += 30 * ms {
		if v := f.poll("a", at); v != pong.PaddleStepSpeed {
			t.Fatalf("t=%v repeating: left velocity = %d, want %d", at, v, pong.PaddleStepSpeed)
		}
	}

	// once repeating, silence means release after the short hold
	if v := f.poll("", 900*ms+KeyHold-ms); v != pong.PaddleStepSpeed {
		t.Errorf("left velocity = %d just before release, want %d", v, pong.PaddleStepSpeed)
	}
	if v := f.poll("", 900*ms+KeyHold); v != 0 {
		t.Errorf("left velocity = %d after release, want 0", v)
	}
}

func TestKeysTapRelease(t *testing.T) {
	f := newFeed()
	ms := time.Millisecond

	f.poll("q", 0)
	if v := f.poll("", FirstRepeatHold-ms); v != -pong.PaddleStepSpeed {
		t.Errorf("left velocity = %d before the first hold ends, want %d", v, -pong.PaddleStepSpeed)
	}
	if v := f.poll("", FirstRepeatHold); v != 0 {
		t.Errorf("left velocity = %d after a tap, want 0", v)
	}
}

func TestKeysPollReader(t *testing.T) {
	now := time.Unix(0, 0)
	k := newKeys(StartStream(strings.NewReader("p")), KeyHold, FirstRepeatHold, func() time.Time { return now })

	var events []pong.Event
	deadline := time.Now().Add(2 * time.Second)
	for !k.eof && time.Now().Before(deadline) {
		events = append(events, k.Poll()...)
		time.Sleep(time.Millisecond)
	}

	equalEvents(t, events, []pong.Event{pong.Pressed(pong.KeyRightUp), pong.CloseEvent()})

	// nothing more is reported after the reader ends
	if extra := k.Poll(); len(extra) != 0 {
		t.Errorf("Poll() after EOF = %+v", extra)
	}
}

func TestTerminalFrontend(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	cols, rows := 50, 20
	size := func() (int, int, error) { return cols, rows, nil }
	var out strings.Builder
	term, err := New(pr, &out, size, pong.Position{X: 500, Y: 400})
	if err != nil {
		t.Fatal(err)
	}

	cols, rows = 100, 30
	term.PollEvents()
	if c, r := term.Size(); c != 100 || r != 30 {
		t.Errorf("Size() = %d, %d after resize; want 100, 30", c, r)
	}

	term.Start()
	term.Stop()
	if !strings.Contains(out.String(), "\033[?25l") || !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Errorf("unexpected cursor control output %q", out.String())
	}
}
