package parsica

import "fmt"

// ProgrammerError signals a contract violation: a grammar bug, not
// malformed input. It is always delivered by panic, never by a
// ParseResult, per spec §7.2.
type ProgrammerError struct {
	Message string
}

func (e ProgrammerError) Error() string {
	return e.Message
}

func panicProgrammerError(format string, args ...any) {
	panic(ProgrammerError{Message: fmt.Sprintf(format, args...)})
}
