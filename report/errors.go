package report

import "fmt"

// ErrorKind enumerates the phases that can reject a program.
type ErrorKind int

// Enumeration of compile error kinds.
const (
	KindLexical  ErrorKind = iota // A segment matched no classification rule.
	KindSyntax                    // The parser's expectation was violated.
	KindSemantic                  // An identifier was used before being declared.
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "Lexical"
	case KindSyntax:
		return "Syntax"
	case KindSemantic:
		return "Semantic"
	default:
		return "Unknown"
	}
}

// CompileError is an error in the user's source text.  Every compile error is
// terminal: the pipeline stops at the first one.
type CompileError struct {
	// The phase which raised the error.
	Kind ErrorKind

	// The error message.
	Message string

	// The 1-based source line on which the error occurs.  Zero means the line
	// is unknown (eg. the parser ran off the end of the input).
	Line int

	// The offending segment, lexeme, or identifier name.
	Lexeme string

	// Expected and Found are only populated for syntax errors.  Expected may be
	// a category name or the name of a grammar construct (eg. "term").
	Expected, Found string
}

func (ce *CompileError) Error() string {
	if ce.Line > 0 {
		return fmt.Sprintf("%s error on line %d: %s", ce.Kind, ce.Line, ce.Message)
	}

	return fmt.Sprintf("%s error: %s", ce.Kind, ce.Message)
}

// RaiseLexical creates an error for a segment that no rule recognises.
func RaiseLexical(line int, segment string) *CompileError {
	return &CompileError{
		Kind:    KindLexical,
		Message: fmt.Sprintf("unrecognized token: <%s>", segment),
		Line:    line,
		Lexeme:  segment,
	}
}

// RaiseSyntax creates a syntax error on the given lexeme.
func RaiseSyntax(line int, lexeme, expected, found string) *CompileError {
	return &CompileError{
		Kind:     KindSyntax,
		Message:  fmt.Sprintf("unexpected <%s>: expected <%s> but found <%s>", lexeme, expected, found),
		Line:     line,
		Lexeme:   lexeme,
		Expected: expected,
		Found:    found,
	}
}

// RaiseSemantic creates an error for a name referenced before any declaration
// gave it a type.
func RaiseSemantic(line int, name string) *CompileError {
	return &CompileError{
		Kind:    KindSemantic,
		Message: fmt.Sprintf("data type missing for identifier <%s>", name),
		Line:    line,
		Lexeme:  name,
	}
}

// IsKind returns whether err is a compile error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	cerr, ok := err.(*CompileError)
	return ok && cerr.Kind == kind
}

// -----------------------------------------------------------------------------

// CatchErrors recovers a compile error thrown by a `panic` during a phase and
// stores it in errp.  Any other panic keeps unwinding: it is a bug, not bad
// input.
// NB: This function must ALWAYS be deferred.
func CatchErrors(errp *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*errp = cerr
		} else {
			panic(x)
		}
	}
}
