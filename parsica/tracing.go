package parsica

import "github.com/dhamidi/parsica/internal/trace"

// EnableTracing turns on debug-level logging of combinator execution
// (see internal/trace). It is purely diagnostic: no parser's result
// changes whether tracing is on or off.
func EnableTracing() {
	trace.Enable()
}

// DisableTracing turns combinator tracing back off.
func DisableTracing() {
	trace.Disable()
}
