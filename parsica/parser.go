package parsica

import "github.com/dhamidi/parsica/internal/trace"

// Parser is an immutable pair of a human label and a pure function from
// a Stream to a ParseResult[T]. Running the same parser on the same
// stream twice yields equal results.
type Parser[T any] struct {
	label Label
	run   func(Stream) ParseResult[T]
}

// New constructs a Parser from a run function and a label.
func New[T any](label Label, run func(Stream) ParseResult[T]) Parser[T] {
	return Parser[T]{label: label, run: run}
}

// Run executes the parser against s.
func (p Parser[T]) Run(s Stream) ParseResult[T] {
	trace.Debugf("run %s at %s", p.label, s.Position())
	return p.run(s)
}

// Label returns the parser's human label.
func (p Parser[T]) Label() Label {
	return p.label
}

// WithLabel returns a parser that behaves like p but, on failure,
// reports l as the expected label instead of p's own. It never rewrites
// a success value; see withLabel (§4.D/§4.F).
func (p Parser[T]) WithLabel(l Label) Parser[T] {
	return WithLabel(p, l)
}

// Or is the method form of Either: try p, and on failure backtrack to
// the original input and try q.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return Either(p, q)
}

// NotFollowedBy is the method form of the free function of the same
// name.
func (p Parser[T]) NotFollowedBy() Parser[Text] {
	return NotFollowedBy(p)
}

// Optional is the method form of the free function of the same name.
func (p Parser[T]) Optional() Parser[T] {
	return Optional(p)
}
