package parsec

import "fmt"

// EOF is reported as the actual input when a parser runs past the end.
const EOF = "EOF"

// Error reports what a parser expected and what it found instead.
type Error struct {
	Expected string
	Actual   string
	// Offset is the index of the offending input element.
	Offset int
	// Line is the 1-based source line of the offending element, 0 if unknown.
	Line int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Expected, e.Actual)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Actual)
}

// Fail returns an *Error describing the element at offset, or EOF when
// offset is past the end of input. describe may be nil.
func Fail[T any](expected string, input []T, offset int, describe func(T) string) *Error {
	if offset >= len(input) {
		return &Error{Expected: expected, Actual: EOF, Offset: offset}
	}
	actual := fmt.Sprint(input[offset])
	if describe != nil {
		actual = describe(input[offset])
	}
	err := &Error{Expected: expected, Actual: actual, Offset: offset}
	if l, ok := any(input[offset]).(interface{ SourceLine() int }); ok {
		err.Line = l.SourceLine()
	}
	return err
}
