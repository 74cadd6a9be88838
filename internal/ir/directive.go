package ir

import (
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/source"
)

// Directive is the immutable root IR value (spec.md §3). Once built by a
// parse entry point it is never mutated; the ordered clause list and the
// indexed clause map are two views over the same owned clauses.
type Directive struct {
	Kind     dirkind.Kind
	Language lang.Language
	Pos      source.Position

	ordered []*Clause
	byKind  map[ClauseKind][]*Clause
}

// New builds a Directive from an ordered clause slice, computing the
// indexed clause map as the partition of that slice under clause kind
// (spec.md §3's invariant). clauses must not be mutated afterward; New
// takes ownership of it.
func New(kind dirkind.Kind, l lang.Language, pos source.Position, clauses []*Clause) *Directive {
	byKind := make(map[ClauseKind][]*Clause)
	for _, c := range clauses {
		byKind[c.Kind] = append(byKind[c.Kind], c)
	}
	return &Directive{
		Kind:     kind,
		Language: l,
		Pos:      pos,
		ordered:  clauses,
		byKind:   byKind,
	}
}

// ClausesInOriginalOrder returns the clause list in source order, O(1).
func (d *Directive) ClausesInOriginalOrder() []*Clause {
	return d.ordered
}

// ClausesByKind returns the non-empty ordered sequence of clauses of kind
// k, or nil if none are present, O(1).
func (d *Directive) ClausesByKind(k ClauseKind) []*Clause {
	return d.byKind[k]
}

// ClauseKinds returns every clause kind present on d, in first-occurrence
// order, used by callers that want to iterate the indexed map exhaustively.
func (d *Directive) ClauseKinds() []ClauseKind {
	seen := make(map[ClauseKind]bool, len(d.byKind))
	var out []ClauseKind
	for _, c := range d.ordered {
		if !seen[c.Kind] {
			seen[c.Kind] = true
			out = append(out, c.Kind)
		}
	}
	return out
}

// Family reports the directive family (OpenMP or OpenACC) of d.
func (d *Directive) Family() lang.Family {
	return d.Kind.Family()
}

// WithLanguage returns a copy of d tagged with a different host language,
// sharing d's clauses (read-only once published, per spec.md §3). Used by
// the language converter, which reparents an already-built Directive
// instead of mutating the one a caller may still hold.
func (d *Directive) WithLanguage(l lang.Language) *Directive {
	cp := *d
	cp.Language = l
	return &cp
}

// RenderFunc is wired by internal/render's init to break the import
// cycle a direct dependency on that package would otherwise create
// (render already depends on ir for Directive and Clause).
var RenderFunc func(d *Directive) string

// SourceText returns d's canonical rendered form, computed fresh on every
// call rather than cached, matching the legacy getPlainDirective contract
// of reconstructing the pragma text on demand.
func (d *Directive) SourceText() string {
	if RenderFunc == nil {
		return ""
	}
	return RenderFunc(d)
}
