package terminal

import (
	"bufio"
	"io"
	"time"

	"github.com/jtestard/classic-pong/pong"
)

// KeyHold is how long a key counts as held after the last byte for it once
// auto-repeat has started. Terminals report presses only, so releases are
// synthesized from silence.
const KeyHold = 150 * time.Millisecond

// FirstRepeatHold covers the gap between a key's first byte and its first
// auto-repeat, which terminals delay by a few hundred milliseconds.
const FirstRepeatHold = 500 * time.Millisecond

// Control bytes that end the game.
const (
	ctrlC  = 0x03
	ctrlD  = 0x04
	escape = 0x1b
)

// keyOrder fixes the order synthesized releases are reported in.
var keyOrder = []pong.Key{pong.KeyLeftUp, pong.KeyLeftDown, pong.KeyRightUp, pong.KeyRightDown}

func keyFor(b byte) (pong.Key, bool) {
	switch b {
	case 'q', 'Q':
		return pong.KeyLeftUp, true
	case 'a', 'A':
		return pong.KeyLeftDown, true
	case 'p', 'P':
		return pong.KeyRightUp, true
	case 'l', 'L':
		return pong.KeyRightDown, true
	}
	return pong.KeyNone, false
}

// partner returns the other key moving the same paddle.
func partner(k pong.Key) pong.Key {
	switch k {
	case pong.KeyLeftUp:
		return pong.KeyLeftDown
	case pong.KeyLeftDown:
		return pong.KeyLeftUp
	case pong.KeyRightUp:
		return pong.KeyRightDown
	case pong.KeyRightDown:
		return pong.KeyRightUp
	}
	return pong.KeyNone
}

// escapeLen measures the escape sequence at the start of seq. A lone ESC
// has length 1. complete is false when seq ends inside the sequence.
func escapeLen(seq []byte) (n int, complete bool) {
	if len(seq) < 2 {
		return 1, false
	}
	switch seq[1] {
	case 'O':
		// SS3: ESC O <code>
		if len(seq) < 3 {
			return 2, false
		}
		return 3, true
	case '[':
		// CSI: ESC [ <params> <final>
		j := 2
		for j < len(seq) && seq[j] >= 0x20 && seq[j] <= 0x3f {
			j++
		}
		if j == len(seq) {
			return j, false
		}
		if seq[j] >= 0x40 && seq[j] <= 0x7e {
			return j + 1, true
		}
		return j, true
	}
	return 1, true
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// drain returns all buffered bytes without blocking, and whether the
// reader has ended.
func (s *Stream) drain() ([]byte, bool) {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, b)
		default:
			return buf, false
		}
	}
}

type heldKey struct {
	seen      time.Time
	repeating bool
}

// Keys turns raw terminal bytes into press and release events.
type Keys struct {
	stream    *Stream
	held      map[pong.Key]heldKey
	hold      time.Duration
	firstHold time.Duration
	now       func() time.Time
	pending   []byte
	eof       bool
}

// NewKeys decodes keys read from r.
func NewKeys(r io.Reader) *Keys {
	return newKeys(StartStream(r), KeyHold, FirstRepeatHold, time.Now)
}

func newKeys(s *Stream, hold, firstHold time.Duration, now func() time.Time) *Keys {
	return &Keys{
		stream:    s,
		held:      make(map[pong.Key]heldKey),
		hold:      hold,
		firstHold: firstHold,
		now:       now,
	}
}

// Poll returns the events for all input received since the last call.
func (k *Keys) Poll() []pong.Event {
	var buf []byte
	eof := k.eof
	if k.stream != nil && !k.eof {
		buf, eof = k.stream.drain()
	}
	return k.decode(buf, eof, k.now())
}

func (k *Keys) decode(fresh []byte, eof bool, now time.Time) []pong.Event {
	var events []pong.Event

	buf := append(k.pending, fresh...)
	k.pending = nil
	// an escape sequence cut off at the end of the input may still be
	// completed by the next poll, as long as bytes are still arriving
	wait := len(fresh) > 0 && !eof

scan:
	for i := 0; i < len(buf); i++ {
		switch b := buf[i]; b {
		case ctrlC, ctrlD:
			events = append(events, pong.CloseEvent())
		case escape:
			n, complete := escapeLen(buf[i:])
			if !complete {
				if wait {
					k.pending = append([]byte(nil), buf[i:]...)
				} else if n == 1 {
					events = append(events, pong.CloseEvent())
				}
				break scan
			}
			if n == 1 {
				events = append(events, pong.CloseEvent())
				continue
			}
			i += n - 1
		default:
			if key, ok := keyFor(b); ok {
				events = k.press(events, key, now)
			}
		}
	}

	for _, key := range keyOrder {
		h, ok := k.held[key]
		if !ok {
			continue
		}
		limit := k.hold
		if !h.repeating {
			limit = k.firstHold
		}
		if now.Sub(h.seen) >= limit {
			delete(k.held, key)
			events = append(events, pong.Released(key))
		}
	}

	if eof && !k.eof {
		k.eof = true
		events = append(events, pong.CloseEvent())
	}
	return events
}

// press records a byte for key. A terminal repeats only the last key
// pressed, so a new key for a paddle means its other key was let go.
func (k *Keys) press(events []pong.Event, key pong.Key, now time.Time) []pong.Event {
	if _, ok := k.held[key]; ok {
		k.held[key] = heldKey{seen: now, repeating: true}
		return events
	}
	if other := partner(key); other != pong.KeyNone {
		if _, ok := k.held[other]; ok {
			delete(k.held, other)
			events = append(events, pong.Released(other))
		}
	}
	k.held[key] = heldKey{seen: now}
	return append(events, pong.Pressed(key))
}
