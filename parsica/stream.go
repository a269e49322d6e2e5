package parsica

import "unicode/utf8"

// Stream is an immutable cursor over a code-point sequence. Take1 never
// mutates the receiver; it returns a new Stream advanced past the
// consumed code point.
type Stream struct {
	text string
	pos  Position
}

// NewStream constructs a Stream over text, positioned at its start.
// file is carried into every Position produced from this stream, for
// error messages only; it never affects parsing decisions.
func NewStream(text, file string) Stream {
	return Stream{text: text, pos: StartPosition(file)}
}

// Position returns the stream's current position.
func (s Stream) Position() Position {
	return s.pos
}

// IsEOF reports whether no code points remain.
func (s Stream) IsEOF() bool {
	return len(s.text) == 0
}

// Remaining returns the unconsumed text.
func (s Stream) Remaining() string {
	return s.text
}

// Take1 returns the next code point and a Stream advanced past it. ok
// is false at end of input, in which case the returned rune and Stream
// are meaningless.
func (s Stream) Take1() (r rune, rest Stream, ok bool) {
	if s.IsEOF() {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(s.text)
	if r == utf8.RuneError && size == 1 {
		r = rune(s.text[0])
	}
	return r, Stream{text: s.text[size:], pos: s.pos.Advance(r)}, true
}

// Snippet returns up to the next n code points as a display string for
// error messages. It returns "<EOF>" when the stream is exhausted.
func (s Stream) Snippet(n int) string {
	if s.IsEOF() {
		return "<EOF>"
	}
	rest := s
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, next, ok := rest.Take1()
		if !ok {
			break
		}
		out = append(out, r)
		rest = next
	}
	return string(out)
}
