package parsica

import "fmt"

// Pure always succeeds with value v, consuming nothing. Label "<pure>".
func Pure[T any](v T) Parser[T] {
	return New[T]("<pure>", func(s Stream) ParseResult[T] {
		return Success(v, s)
	})
}

// Fail always fails with the given expected label.
func Fail[T any](label Label) Parser[T] {
	return New[T](label, func(s Stream) ParseResult[T] {
		return Failure[T](label, s.Snippet(1), s.Position())
	})
}

// Succeed is the identity of Either: it always succeeds, consuming
// nothing, with the empty text value. Equivalent to Pure(Text("")).
var Succeed = Pure[Text]("")

// Satisfy consumes one code point if pred holds for it. Fails on EOF or
// when pred rejects the code point, under the given label.
func Satisfy(pred func(rune) bool, label Label) Parser[rune] {
	return New[rune](label, func(s Stream) ParseResult[rune] {
		r, rest, ok := s.Take1()
		if !ok || !pred(r) {
			return Failure[rune](label, s.Snippet(1), s.Position())
		}
		return Success(r, rest)
	})
}

// Char parses exactly the code point c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c }, Label(fmt.Sprintf("%q", string(c))))
}

// CharText is Char with its value lifted into the Text monoid, for use
// with combinators that need to Append character results into a string
// — Repeat, AtLeastOne, Assemble — rather than collect them into a Seq.
func CharText(c rune) Parser[Text] {
	return Map(Char(c), func(r rune) Text { return Text(r) })
}

// AnySingle consumes any single code point; fails only on EOF.
var AnySingle = New[rune]("any character", func(s Stream) ParseResult[rune] {
	r, rest, ok := s.Take1()
	if !ok {
		return Failure[rune]("any character", "<EOF>", s.Position())
	}
	return Success(r, rest)
})

// Eof succeeds with the empty value iff the stream is exhausted;
// otherwise fails with expected="<EOF>".
var Eof = New[Text]("<EOF>", func(s Stream) ParseResult[Text] {
	if s.IsEOF() {
		return Success(Text(""), s)
	}
	return Failure[Text]("<EOF>", s.Snippet(1), s.Position())
})

// String parses exactly the literal lit, code point by code point. On a
// mismatch, including a partial match, it fails at the position where
// it started, with up to len(lit) code points of the input as got.
func String(lit string) Parser[Text] {
	label := Label(fmt.Sprintf("%q", lit))
	runes := []rune(lit)
	return New[Text](label, func(s Stream) ParseResult[Text] {
		cur := s
		for _, want := range runes {
			r, rest, ok := cur.Take1()
			if !ok || r != want {
				return Failure[Text](label, s.Snippet(len(runes)), s.Position())
			}
			cur = rest
		}
		return Success(Text(lit), cur)
	})
}
