/*
Package cowbird is a scannerless LR parser generator library.

Consists of subpackages:
  - cmd/cowbird: console utility for checking grammar files, dumping automatons and tables, and parsing inputs;
  - grammar: defines structures that contain symbols, productions, and the state machine used by parser;
  - gramdef: compiles grammar definitions (non-terminal name -> alternatives) into grammar structures;
  - gramfile: loads grammar definitions from TOML files;
  - parser: executes compiled grammars directly against input text, no separate lexer involved;
  - source: defines source text used by parser for position tracking;
  - tree: types and functions to build and render generic parse trees.

Typical usage is:

1. Describe grammar as a map from non-terminal names to lists of alternatives.
Each alternative is a whitespace-separated sequence of terminal patterns and
<name> non-terminal references, optionally followed by a semantic action.
The same grammar can be used for different purposes (calculators, linters,
tree builders, etc.) by swapping the actions.

2. Compile the definition using gramdef.Compile, once.

3. Create a parser for the compiled grammar and feed it source texts.
Actions receive the values popped on each reduction together with a
caller-supplied binding; their results form the parsed output.
*/
package cowbird

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	DefErrors    = 1   // used by gramdef
	SyntaxErrors = 201 // used by parser
	FileErrors   = 301 // used by gramfile
)

// Action is a semantic action attached to a grammar production.
// On every reduction the parser calls the production's action (if any) with
// the values popped from the value stack (in rule order) and the binding
// passed to Parse, and pushes the returned value back onto the stack.
// A non-nil error aborts the parse.
type Action = func(args []any, binding any) (any, error)

// Error is the error type used by cowbird subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Pos contains byte offset in source text or 0.
	Pos int

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Pos returns byte offset in source text.
	Pos() int
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, pos, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, pos, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Pos(), pos.Line(), pos.Col())
}
