package parsica

import "testing"

func TestStreamTake1(t *testing.T) {
	s := NewStream("abc", "")

	r, rest, ok := s.Take1()
	if !ok || r != 'a' {
		t.Fatalf("Take1() = (%q, _, %v), want ('a', _, true)", r, ok)
	}
	if rest.Position() != (Position{Line: 1, Column: 2, Offset: 1}) {
		t.Errorf("rest.Position() = %+v, want column 2", rest.Position())
	}

	// Take1 never mutates: s still yields 'a' again.
	r2, _, ok2 := s.Take1()
	if !ok2 || r2 != 'a' {
		t.Errorf("second Take1() on original stream = (%q, _, %v), want ('a', _, true)", r2, ok2)
	}
}

func TestStreamPersistence(t *testing.T) {
	s := NewStream("hello", "")
	_, s2, _ := s.Take1()
	// Advancing an old Stream independently must yield the same
	// successor as doing so via the earlier reference.
	_, s2Again, _ := s.Take1()
	if s2.Position() != s2Again.Position() {
		t.Errorf("independent advances diverged: %+v vs %+v", s2.Position(), s2Again.Position())
	}
}

func TestStreamEOF(t *testing.T) {
	s := NewStream("", "")
	if !s.IsEOF() {
		t.Error("IsEOF() = false on empty stream")
	}
	_, _, ok := s.Take1()
	if ok {
		t.Error("Take1() on empty stream returned ok=true")
	}
}

func TestStreamSnippet(t *testing.T) {
	s := NewStream("hello world", "")
	if got, want := s.Snippet(5), "hello"; got != want {
		t.Errorf("Snippet(5) = %q, want %q", got, want)
	}
	if got, want := NewStream("", "").Snippet(5), "<EOF>"; got != want {
		t.Errorf("Snippet(5) on empty stream = %q, want %q", got, want)
	}
	if got, want := NewStream("hi", "").Snippet(10), "hi"; got != want {
		t.Errorf("Snippet(10) on short stream = %q, want %q", got, want)
	}
}

func TestStreamUnicode(t *testing.T) {
	s := NewStream("日本語", "")
	r, rest, ok := s.Take1()
	if !ok || r != '日' {
		t.Fatalf("Take1() = (%q, _, %v), want ('日', _, true)", r, ok)
	}
	if got := rest.Position().Column; got != 2 {
		t.Errorf("column after one multi-byte rune = %d, want 2", got)
	}
}
