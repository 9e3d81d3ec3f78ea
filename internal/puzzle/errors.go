package puzzle

import "fmt"

// ParseError reports input that does not have the shape a solver expects.
// Line is 1-based; 0 means the error is not tied to a line. Day is filled
// in by the Runner; solvers leave it 0.
type ParseError struct {
	Day  int
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.Day != 0 {
		prefix = fmt.Sprintf("day %d: ", e.Day)
	}
	if e.Line == 0 {
		return prefix + "parse input: " + e.Msg
	}
	return fmt.Sprintf("%sparse input line %d: %s", prefix, e.Line, e.Msg)
}

// Errorf builds a ParseError for a 0-based line index.
func Errorf(idx int, format string, args ...any) error {
	return &ParseError{Line: idx + 1, Msg: fmt.Sprintf(format, args...)}
}

// Invalid builds a ParseError that is not tied to a line.
func Invalid(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// AtLine attaches a 0-based line index to err. A ParseError keeps its
// message; any other error is carried as text.
func AtLine(idx int, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		return &ParseError{Day: pe.Day, Line: idx + 1, Msg: pe.Msg}
	}
	return &ParseError{Line: idx + 1, Msg: err.Error()}
}
