package registry

import "github.com/ouankou/roup/internal/ir"

// ParseResult is the owned vector behind a parse-result aggregate handle
// (spec.md §4.G): draining it via TakeAll transfers ownership of every
// directive to the caller, after which the aggregate itself still frees
// as a no-op.
type ParseResult struct {
	Directives []*ir.Directive
}

// TakeAll empties r and returns what it held; a second call returns nil,
// the EmptyResult failure mode.
func (r *ParseResult) TakeAll() []*ir.Directive {
	out := r.Directives
	r.Directives = nil
	return out
}

// ClauseCursor walks a directive's clause list in original order.
type ClauseCursor struct {
	clauses []*ir.Clause
	pos     int
}

// NewClauseCursor wraps clauses, positioned before the first element.
func NewClauseCursor(clauses []*ir.Clause) *ClauseCursor {
	return &ClauseCursor{clauses: clauses, pos: -1}
}

// Next advances the cursor and returns the clause it now points to, or
// false if the cursor has reached the end.
func (c *ClauseCursor) Next() (*ir.Clause, bool) {
	if c.pos+1 >= len(c.clauses) {
		c.pos = len(c.clauses)
		return nil, false
	}
	c.pos++
	return c.clauses[c.pos], true
}

// Current returns the clause the cursor currently points to without
// advancing, or false if the cursor is before the first element or past
// the last.
func (c *ClauseCursor) Current() (*ir.Clause, bool) {
	if c.pos < 0 || c.pos >= len(c.clauses) {
		return nil, false
	}
	return c.clauses[c.pos], true
}

// IsDone reports whether the cursor has advanced past the last clause.
func (c *ClauseCursor) IsDone() bool {
	return c.pos >= len(c.clauses)
}

// Reset returns the cursor to its initial, before-the-first-element
// position.
func (c *ClauseCursor) Reset() {
	c.pos = -1
}

// Total reports the number of clauses the cursor walks.
func (c *ClauseCursor) Total() int {
	return len(c.clauses)
}

// Position reports the cursor's current index, or -1 before the first
// element.
func (c *ClauseCursor) Position() int {
	return c.pos
}

// At returns the clause at index i directly, without disturbing the
// cursor's own position.
func (c *ClauseCursor) At(i int) (*ir.Clause, bool) {
	if i < 0 || i >= len(c.clauses) {
		return nil, false
	}
	return c.clauses[i], true
}
