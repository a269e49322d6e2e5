package parsica

// Monoid is the capability append (§4.C, §4.F) needs to combine two
// successful values: a type knows how to append another value of its
// own type to itself. Append must be associative, and each
// implementation's zero value must be its identity.
type Monoid[T any] interface {
	Append(T) T
}

// Text is a string realizing Monoid via concatenation.
type Text string

// Append concatenates t and other, t first.
func (t Text) Append(other Text) Text {
	return t + other
}

// Seq is a sequence of values of type V, realizing Monoid via slice
// concatenation.
type Seq[V any] []V

// Append concatenates s and other, s first.
func (s Seq[V]) Append(other Seq[V]) Seq[V] {
	if len(s) == 0 {
		return other
	}
	if len(other) == 0 {
		return s
	}
	out := make(Seq[V], 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// Single returns a one-element Seq, the unit used by Collect to lift a
// single value into the sequence monoid.
func Single[V any](v V) Seq[V] {
	return Seq[V]{v}
}
