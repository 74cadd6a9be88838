// Package diag is the library's closed error-kind surface (spec.md §7).
// Every failure mode a parse, query, or registry operation can produce is
// one Code below; Diagnostic carries a Code plus enough context to explain
// it without ever partially constructing a result.
package diag

import "fmt"

// Code is a closed error-kind enumeration grouped by the subsystem that
// raises it, the way the teacher's internal/diag/codes.go bands Lex*/Syn*
// codes numerically.
type Code uint16

const (
	// UnknownCode is never produced; it guards against a zero-valued Code
	// being mistaken for a real error.
	UnknownCode Code = 0

	// Token source (1000s) — spec.md §4.A, §7.
	InvalidEncoding Code = 1001 // input bytes are not valid UTF-8
	NoDirective     Code = 1002 // sentinel absent or unrecognized
	LexError        Code = 1003 // unbalanced parentheses

	// Directive-kind recognizer (2000s) — spec.md §4.B, §7.
	UnknownDirective Code = 2001 // no trie path matches the keyword sequence

	// Clause parser (3000s) — spec.md §4.C, §7.
	MalformedClause Code = 3001 // unknown clause keyword or malformed argument body

	// IR model (4000s) — spec.md §4.D, §7.
	TypeMismatch Code = 4001 // typed accessor used against the wrong clause variant

	// Handle registry / C ABI (5000s) — spec.md §4.G, §7.
	InvalidHandle Code = 5001 // handle is zero, unissued, or freed
	OutOfBounds   Code = 5002 // index exceeds a clause or item container
	NullPointer   Code = 5003 // required out-pointer is null
	EmptyResult   Code = 5004 // take-last-result called with no pending result
)

// String names the code for diagnostic messages.
func (c Code) String() string {
	switch c {
	case InvalidEncoding:
		return "InvalidEncoding"
	case NoDirective:
		return "NoDirective"
	case LexError:
		return "LexError"
	case UnknownDirective:
		return "UnknownDirective"
	case MalformedClause:
		return "MalformedClause"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidHandle:
		return "InvalidHandle"
	case OutOfBounds:
		return "OutOfBounds"
	case NullPointer:
		return "NullPointer"
	case EmptyResult:
		return "EmptyResult"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}
