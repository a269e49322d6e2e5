package parsica

import (
	"strconv"
	"strings"
)

// Map runs p; on success applies f to the value. Label: p's label.
// Fails iff p fails, with p's failure.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New[U](p.label, func(s Stream) ParseResult[U] {
		return MapResult(p.Run(s), f)
	})
}

// Bind is monadic bind: runs p; on success evaluates k(value) to obtain
// p2 and runs p2 on the remaining stream. Label: p's label.
func Bind[T, U any](p Parser[T], k func(T) Parser[U]) Parser[U] {
	return New[U](p.label, func(s Stream) ParseResult[U] {
		r := p.Run(s)
		if r.IsFailure() {
			return retag[T, U](r)
		}
		return k(r.Value()).Run(r.Remaining())
	})
}

// Apply runs pf for a function, then px on the remainder, and returns
// f(x).
func Apply[T, U any](pf Parser[func(T) U], px Parser[T]) Parser[U] {
	return Bind(pf, func(f func(T) U) Parser[U] {
		return Map(px, f)
	})
}

// Sequence runs p, then q; returns q's value. Equivalent to
// Bind(p, func(T) Parser[U] { return q }).
func Sequence[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Bind(p, func(T) Parser[U] { return q })
}

// KeepFirst runs p, then q; returns p's value.
func KeepFirst[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Bind(p, func(v T) Parser[T] {
		return Map(q, func(U) T { return v })
	})
}

// KeepSecond runs p, then q; returns q's value. An alias for Sequence.
func KeepSecond[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Sequence(p, q)
}

// Either runs p; if it succeeds, returns that result. On failure, runs
// q from the original input position — p's consumption is fully
// discarded. If q succeeds, returns that; otherwise returns a failure
// labelled "<p> or <q>" carrying q's got (per spec §9's documented,
// intentionally non-deepest-position behaviour).
func Either[T any](p, q Parser[T]) Parser[T] {
	label := Label(string(p.label) + " or " + string(q.label))
	return New[T](label, func(s Stream) ParseResult[T] {
		r := p.Run(s)
		if r.IsSuccess() {
			return r
		}
		r2 := q.Run(s)
		if r2.IsSuccess() {
			return r2
		}
		return r2.withLabel(label)
	})
}

// Any is a right fold of Either over parsers, seeded with Fail(""),
// relabelled to "p1 or ... or pn". It is a programmer error to call Any
// with zero parsers.
func Any[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		panicProgrammerError("Any called with zero parsers")
	}
	acc := Fail[T]("")
	for i := len(parsers) - 1; i >= 0; i-- {
		acc = Either(parsers[i], acc)
	}
	labels := make([]string, len(parsers))
	for i, p := range parsers {
		labels[i] = string(p.label)
	}
	label := Label(strings.Join(labels, " or "))
	return New[T](label, func(s Stream) ParseResult[T] {
		return acc.Run(s).withLabel(label)
	})
}

// Choice is an alias for Any.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return Any(parsers...)
}

// Append runs p, then q on the remainder, then combines their values
// via T's Monoid. Label: q's label. Fails if either fails.
func Append[T Monoid[T]](p, q Parser[T]) Parser[T] {
	return New[T](q.label, func(s Stream) ParseResult[T] {
		return runAppend(p, q, s)
	})
}

// runAppend runs p then q on p's remainder and combines their values,
// shared by Append and Assemble's fold.
func runAppend[T Monoid[T]](p, q Parser[T], s Stream) ParseResult[T] {
	r1 := p.Run(s)
	if r1.IsFailure() {
		return r1
	}
	r2 := q.Run(r1.Remaining())
	if r2.IsFailure() {
		return r2
	}
	return Success(r1.Value().Append(r2.Value()), r2.Remaining())
}

// Assemble left-folds Append over all of its arguments. n must be >= 1.
func Assemble[T Monoid[T]](p1 Parser[T], rest ...Parser[T]) Parser[T] {
	acc := p1
	for _, p := range rest {
		next := p
		prev := acc
		acc = New[T](next.label, func(s Stream) ParseResult[T] {
			return runAppend(prev, next, s)
		})
	}
	return acc
}

// Collect wraps each value in a singleton Seq and assembles them,
// yielding an n-element sequence of values. n must be >= 1.
func Collect[T any](p1 Parser[T], rest ...Parser[T]) Parser[Seq[T]] {
	first := Map(p1, Single[T])
	wrapped := make([]Parser[Seq[T]], len(rest))
	for i, p := range rest {
		wrapped[i] = Map(p, Single[T])
	}
	return Assemble(first, wrapped...)
}

// Optional never fails: it returns p's value on success, or T's zero
// value if p fails, without consuming input in the failing case.
// Equivalent to Either(p, Pure(zero)), generalized from spec's
// Either(p, Succeed()) — Succeed's empty-string value is specific to
// the Text monoid; the zero value of T is the general analogue for an
// arbitrary type parameter.
func Optional[T any](p Parser[T]) Parser[T] {
	var zero T
	return Either(p, Pure(zero))
}

// Many parses p zero or more times, returning a Seq of its values. It
// iterates rather than recurses, per spec §5, and panics with a
// ProgrammerError if p succeeds without consuming input (grounded on
// java/parser.Parser.mustProgress, which guards the identical case in
// the teacher's own statement-list loop).
func Many[T any](p Parser[T]) Parser[Seq[T]] {
	label := Label("many " + string(p.label))
	return New[Seq[T]](label, func(s Stream) ParseResult[Seq[T]] {
		var vals Seq[T]
		cur := s
		for {
			r := p.Run(cur)
			if r.IsFailure() {
				return Success(vals, cur)
			}
			if r.Remaining().Position() == cur.Position() {
				panicProgrammerError("many applied to zero-consumption parser %q", p.label)
			}
			vals = append(vals, r.Value())
			cur = r.Remaining()
		}
	})
}

// Some parses p one or more times, returning a Seq of its values.
// Equivalent to Append(Map(p, Single), Many(p)) but implemented as one
// iterative loop, per spec §5.
func Some[T any](p Parser[T]) Parser[Seq[T]] {
	label := Label("some " + string(p.label))
	return New[Seq[T]](label, func(s Stream) ParseResult[Seq[T]] {
		first := p.Run(s)
		if first.IsFailure() {
			return retag[T, Seq[T]](first)
		}
		vals := Seq[T]{first.Value()}
		cur := first.Remaining()
		for {
			r := p.Run(cur)
			if r.IsFailure() {
				return Success(vals, cur)
			}
			if r.Remaining().Position() == cur.Position() {
				panicProgrammerError("some applied to zero-consumption parser %q", p.label)
			}
			vals = append(vals, r.Value())
			cur = r.Remaining()
		}
	})
}

// AtLeastOne parses p one or more times, combining values via T's
// Monoid rather than collecting them into a Seq — useful for
// concatenating runs of characters into a Text.
func AtLeastOne[T Monoid[T]](p Parser[T]) Parser[T] {
	label := Label("at least one " + string(p.label))
	return New[T](label, func(s Stream) ParseResult[T] {
		first := p.Run(s)
		if first.IsFailure() {
			return first
		}
		acc := first.Value()
		cur := first.Remaining()
		for {
			r := p.Run(cur)
			if r.IsFailure() {
				return Success(acc, cur)
			}
			if r.Remaining().Position() == cur.Position() {
				panicProgrammerError("atLeastOne applied to zero-consumption parser %q", p.label)
			}
			acc = acc.Append(r.Value())
			cur = r.Remaining()
		}
	})
}

// Repeat parses p exactly n times via Append, combining values through
// T's Monoid. n must be >= 1. On a partial match it fails with p's own
// failure unchanged (expected/got/position all p's), the same
// failure-propagation convention as Append/Assemble's runAppend.
func Repeat[T Monoid[T]](n int, p Parser[T]) Parser[T] {
	if n < 1 {
		panicProgrammerError("Repeat called with n=%d, must be >= 1", n)
	}
	label := Label(timesLabel(n, p.label))
	return New[T](label, func(s Stream) ParseResult[T] {
		r := p.Run(s)
		if r.IsFailure() {
			return r
		}
		acc := r.Value()
		cur := r.Remaining()
		for i := 1; i < n; i++ {
			r = p.Run(cur)
			if r.IsFailure() {
				return r
			}
			acc = acc.Append(r.Value())
			cur = r.Remaining()
		}
		return Success(acc, cur)
	})
}

// RepeatList parses p exactly n times, yielding a Seq of its values. n
// must be >= 1. On a partial match it fails with p's own failure
// unchanged, the same failure-propagation convention as Repeat/Append.
func RepeatList[T any](n int, p Parser[T]) Parser[Seq[T]] {
	if n < 1 {
		panicProgrammerError("RepeatList called with n=%d, must be >= 1", n)
	}
	label := Label(timesLabel(n, p.label))
	return New[Seq[T]](label, func(s Stream) ParseResult[Seq[T]] {
		vals := make(Seq[T], 0, n)
		cur := s
		for i := 0; i < n; i++ {
			r := p.Run(cur)
			if r.IsFailure() {
				return retag[T, Seq[T]](r)
			}
			vals = append(vals, r.Value())
			cur = r.Remaining()
		}
		return Success(vals, cur)
	})
}

func timesLabel(n int, inner Label) string {
	if n == 1 {
		return "1 time " + string(inner)
	}
	return strconv.Itoa(n) + " times " + string(inner)
}

// Between parses open, then mid, then close, returning mid's value.
// Equivalent to KeepSecond(open, KeepFirst(mid, close)). Label:
// "between".
func Between[O, T, C any](open Parser[O], close Parser[C], mid Parser[T]) Parser[T] {
	return New[T]("between", func(s Stream) ParseResult[T] {
		return KeepSecond(open, KeepFirst(mid, close)).Run(s)
	})
}

// SepBy1 parses one or more p separated by sep, returning a Seq of p's
// values (sep's values are discarded). Label: "sepBy1".
func SepBy1[S, T any](sep Parser[S], p Parser[T]) Parser[Seq[T]] {
	return New[Seq[T]]("sepBy1", func(s Stream) ParseResult[Seq[T]] {
		first := p.Run(s)
		if first.IsFailure() {
			return retag[T, Seq[T]](first)
		}
		vals := Seq[T]{first.Value()}
		cur := first.Remaining()
		sepThenP := Sequence(sep, p)
		for {
			r := sepThenP.Run(cur)
			if r.IsFailure() {
				return Success(vals, cur)
			}
			vals = append(vals, r.Value())
			cur = r.Remaining()
		}
	})
}

// SepBy parses zero or more p separated by sep. Unlike SepBy1, it
// always succeeds, returning an empty Seq on no match.
func SepBy[S, T any](sep Parser[S], p Parser[T]) Parser[Seq[T]] {
	return Either(SepBy1(sep, p), Pure[Seq[T]](nil))
}

// NotFollowedBy runs p on the current input without consuming: it
// succeeds with the empty value iff p failed, and fails iff p
// succeeded. Label: "notFollowedBy(<p>)".
func NotFollowedBy[T any](p Parser[T]) Parser[Text] {
	label := Label("notFollowedBy(" + string(p.label) + ")")
	return New[Text](label, func(s Stream) ParseResult[Text] {
		if p.Run(s).IsSuccess() {
			return Failure[Text](label, s.Snippet(1), s.Position())
		}
		return Success(Text(""), s)
	})
}

// WithLabel runs p; on failure it rewrites expected to l while keeping
// got and position. It never changes a success value.
func WithLabel[T any](p Parser[T], l Label) Parser[T] {
	return New[T](l, func(s Stream) ParseResult[T] {
		return p.Run(s).withLabel(l)
	})
}
