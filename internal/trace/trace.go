// Package trace provides optional, off-by-default tracing of combinator
// execution, grounded on java/codebase/lsp.go's registration of
// commonlog's default backend for the teacher's own LSP server.
package trace

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var logger commonlog.Logger

// Enable raises commonlog's maximum level to Debug and switches Debugf
// from a no-op to an actual logger. The simple backend itself is
// registered by this package's blank import of commonlog/simple. It never affects a ParseResult: the
// combinator algebra computes the same thing whether or not tracing is
// on, only what gets logged along the way differs.
func Enable() {
	commonlog.SetMaxLevel(commonlog.Debug)
	logger = commonlog.GetLogger("parsica")
}

// Disable turns tracing back off.
func Disable() {
	logger = nil
}

// Debugf logs a debug-level message if tracing is enabled; otherwise it
// returns at once. Its arguments are still evaluated, and boxed into the
// variadic slice, by the caller either way.
func Debugf(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}
