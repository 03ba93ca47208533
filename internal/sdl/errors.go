package sdl

import "fmt"

// UnknownDirectiveError reports a line whose directive name has no
// registered handler.
type UnknownDirectiveError struct {
	Line int
	Name string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("unknown directive %q on line %d", e.Name, e.Line)
}

// Kind identifies the error category for diagnostics and logging.
func (e *UnknownDirectiveError) Kind() string { return "UnknownDirective" }

// BadStringError reports a malformed quoted-string argument.
type BadStringError struct {
	Token string
}

func (e *BadStringError) Error() string {
	return fmt.Sprintf("bad string: %q is not a validly quoted string", e.Token)
}

// Kind identifies the error category for diagnostics and logging.
func (e *BadStringError) Kind() string { return "BadString" }

// AlreadyParsedError reports a second call to Parser.Parse.
type AlreadyParsedError struct{}

func (e *AlreadyParsedError) Error() string {
	return "parse() has already been called for this parser"
}

// Kind identifies the error category for diagnostics and logging.
func (e *AlreadyParsedError) Kind() string { return "AlreadyParsed" }

// ArgCountError reports a directive invoked with the wrong number of
// (non-variadic) arguments.
type ArgCountError struct {
	Directive string
	Got       int
	Want      int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Directive, e.Want, e.Got)
}

// Kind identifies the error category for diagnostics and logging.
func (e *ArgCountError) Kind() string { return "ArgCount" }

// LineError annotates an underlying error with the SDL source line
// number and original text it was raised from. It preserves the
// original error's Kind via Unwrap so callers can still use
// errors.As to recover it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying error for errors.As/errors.Is.
func (e *LineError) Unwrap() error { return e.Err }
