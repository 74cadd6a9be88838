package ir

import "github.com/ouankou/roup/internal/diag"

// Variant is the shape a Clause's payload takes, per spec.md §3.
type Variant uint8

const (
	// Bare clauses carry no argument body.
	Bare Variant = iota
	// Expression clauses carry one opaque expression token run.
	Expression
	// List clauses carry an ordered, non-empty item sequence plus an
	// optional modifier.
	List
	// Enum clauses carry a small closed tag plus optional extra data.
	Enum
	// Composite clauses carry a small fixed set of optional subfields.
	Composite
)

// Clause is an immutable tagged value: Kind plus Variant select which of
// the payload fields below are meaningful; the rest are zero. Modifiers
// is populated independently of Variant (spec.md §3: "for every clause, a
// modifier set").
type Clause struct {
	Kind      ClauseKind
	Variant   Variant
	Modifiers []string

	// Expression payload.
	Expr string

	// List payload.
	Items []string

	// Enum payload (reduction operator, schedule kind, default value, ...).
	EnumTag string
	EnumArg string

	// Composite payload (currently only OpenACC "wait").
	Wait *WaitData
}

// WaitData is the composite payload for OpenACC's wait([devnum: n,]
// [queues:] int-list) clause; "devnum: n:" is accepted in place of
// "devnum: n,".
type WaitData struct {
	Devnum string // empty if absent
	Queues []string
}

// AsBare returns nil if c is a Bare clause, else *diag.Diagnostic with
// Code TypeMismatch.
func (c *Clause) AsBare() error {
	if c.Variant != Bare {
		return diag.New(diag.TypeMismatch, c.Kind.String())
	}
	return nil
}

// AsExpression returns the expression body, or a TypeMismatch error.
func (c *Clause) AsExpression() (string, error) {
	if c.Variant != Expression {
		return "", diag.New(diag.TypeMismatch, c.Kind.String())
	}
	return c.Expr, nil
}

// AsList returns the item sequence and optional modifier, or a
// TypeMismatch error.
func (c *Clause) AsList() ([]string, []string, error) {
	if c.Variant != List {
		return nil, nil, diag.New(diag.TypeMismatch, c.Kind.String())
	}
	return c.Items, c.Modifiers, nil
}

// AsEnum returns the tag, optional extra argument, and optional item
// list (used by reduction, which combines an operator tag with an item
// list), or a TypeMismatch error.
func (c *Clause) AsEnum() (tag, arg string, items []string, err error) {
	if c.Variant != Enum {
		return "", "", nil, diag.New(diag.TypeMismatch, c.Kind.String())
	}
	return c.EnumTag, c.EnumArg, c.Items, nil
}

// AsComposite returns the composite payload, or a TypeMismatch error.
func (c *Clause) AsComposite() (*WaitData, error) {
	if c.Variant != Composite {
		return nil, diag.New(diag.TypeMismatch, c.Kind.String())
	}
	return c.Wait, nil
}
