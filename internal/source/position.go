// Package source carries the minimal location information the IR needs:
// a one-based line/column pair, both zero when the caller did not supply
// one. Unlike a whole-program compiler, this library parses one logical
// line at a time, so there is no multi-file set or string interner here.
package source

import "fmt"

// Position is a one-based line/column pair. The zero value means
// "unknown" per spec.md §3 (Directive's optional source location).
type Position struct {
	Line   uint32
	Column uint32
}

// Known reports whether the position carries real line/column data.
func (p Position) Known() bool {
	return p.Line != 0 || p.Column != 0
}

func (p Position) String() string {
	if !p.Known() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) within the single logical
// line fed to the lexer.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }
func (s Span) Len() uint32 { return s.End - s.Start }
