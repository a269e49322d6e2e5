package parsica

import "github.com/sasha-s/go-deadlock"

// RecursiveParser is a Parser[T] whose run function is initially
// undefined. Exactly one call to Recurse installs the body; running a
// RecursiveParser before that call is a programmer error.
//
// The mutex is the library's one mutable cell: the body is written
// exactly once, then read concurrently by every subsequent Run. A
// sync.Mutex would do the job; go-deadlock is a drop-in replacement
// that the teacher's own dependency graph already carries, and earns
// its place here guarding the single install-time race this type
// exists to mediate.
type RecursiveParser[T any] struct {
	label Label
	mu    deadlock.Mutex
	body  func(Stream) ParseResult[T]
}

// Recursive creates a placeholder RecursiveParser[T]. Use its Parser
// method inside the construction of body for self- or mutual
// reference, then call Recurse to install body.
func Recursive[T any](label Label) *RecursiveParser[T] {
	return &RecursiveParser[T]{label: label}
}

// Recurse installs body as r's run function and returns r's Parser[T]
// view. Calling Recurse more than once is a programmer error.
func (r *RecursiveParser[T]) Recurse(body func(Stream) ParseResult[T]) Parser[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.body != nil {
		panicProgrammerError("Recurse called twice on recursive parser %q", r.label)
	}
	r.body = body
	return r.Parser()
}

// Parser returns a Parser[T] view of r. It may be called before
// Recurse, to be embedded in body while body is still being built;
// running the returned Parser before Recurse installs a body is a
// programmer error.
func (r *RecursiveParser[T]) Parser() Parser[T] {
	return New[T](r.label, func(s Stream) ParseResult[T] {
		r.mu.Lock()
		body := r.body
		r.mu.Unlock()
		if body == nil {
			panicProgrammerError("recursive parser %q run before Recurse installed its body", r.label)
		}
		return body(s)
	})
}
