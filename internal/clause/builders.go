package clause

import (
	"strings"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/ir"
)

// buildBare rejects an argument body; bare clauses carry none.
func buildBare(kind ir.ClauseKind, hasBody bool) (*ir.Clause, error) {
	if hasBody {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	return &ir.Clause{Kind: kind, Variant: ir.Bare}, nil
}

// buildExpression stores body verbatim as the opaque expression text.
// Several clauses (ordered, acc async/gang/worker/vector/tile) are legal
// both bare and parenthesized; hasBody false simply yields an empty Expr.
// Whether a body is semantically required for a given kind is left
// unchecked, per the library's no-semantic-validation scope.
func buildExpression(kind ir.ClauseKind, body string, hasBody bool) *ir.Clause {
	expr := ""
	if hasBody {
		expr = strings.TrimSpace(body)
	}
	return &ir.Clause{Kind: kind, Variant: ir.Expression, Expr: expr}
}

// buildList splits body into an optional leading modifier set and a
// top-level comma-separated item sequence.
func buildList(kind ir.ClauseKind, body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	modifiers, rest, ok := splitModifier(body)
	if !ok {
		rest = body
	}
	if strings.TrimSpace(rest) == "" {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	items := splitTopLevel(rest)
	return &ir.Clause{Kind: kind, Variant: ir.List, Modifiers: modifiers, Items: items}, nil
}

// buildEnumTag treats the whole body as a single lowercased tag, the
// shape shared by proc_bind, bind, default, atomic_default_mem_order,
// and their OpenACC counterparts.
func buildEnumTag(kind ir.ClauseKind, body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	tag := strings.ToLower(strings.TrimSpace(body))
	return &ir.Clause{Kind: kind, Variant: ir.Enum, EnumTag: tag}, nil
}

// reductionOperators maps every built-in OpenMP/OpenACC reduction
// operator spelling to its canonical name, matching
// original_source/src/ir/clause.rs's ReductionOperator enum (Add,
// Subtract, Multiply, BitwiseAnd, BitwiseOr, BitwiseXor, LogicalAnd,
// LogicalOr, Min, Max). A modifier absent from this table is a
// user-defined reduction identifier instead (the Custom variant there).
var reductionOperators = map[string]string{
	"+":   "add",
	"-":   "subtract",
	"*":   "multiply",
	"&":   "bitwise_and",
	"|":   "bitwise_or",
	"^":   "bitwise_xor",
	"&&":  "logical_and",
	"||":  "logical_or",
	"min": "min",
	"max": "max",
}

// buildReduction parses "operator-or-identifier: item[, item]*", shared
// by reduction, in_reduction's sibling task_reduction is a plain list (no
// operator), and OpenACC's reduction. EnumTag keeps the modifier's
// original spelling (render needs it verbatim); EnumArg carries the
// operator's canonical name, or "custom" when the modifier names a
// user-defined reduction identifier rather than a built-in operator.
func buildReduction(kind ir.ClauseKind, body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	operator, rest, ok := splitReductionOperator(body)
	if !ok || operator == "" {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	items := splitTopLevel(rest)
	op, isBuiltin := reductionOperators[strings.ToLower(operator)]
	if !isBuiltin {
		op = "custom"
	}
	return &ir.Clause{Kind: kind, Variant: ir.Enum, EnumTag: operator, EnumArg: op, Items: items}, nil
}

// splitReductionOperator finds the top-level ':' separating a reduction
// clause's operator-or-identifier from its item list. Unlike
// splitModifier, it does not lowercase what it returns: a user-defined
// reduction identifier's case must survive to roup_clause_reduction_identifier
// unmangled, and a built-in operator symbol has no case to lose.
func splitReductionOperator(body string) (operator, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+1:]), true
			}
		}
	}
	return "", body, false
}

// buildSchedule parses "[modifier[,modifier]:]kind[, chunk]".
func buildSchedule(body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, ir.Schedule.String())
	}
	modifiers, rest, ok := splitModifier(body)
	if !ok {
		rest = body
		modifiers = nil
	}
	parts := splitTopLevel(rest)
	if len(parts) == 0 || parts[0] == "" {
		return nil, diag.New(diag.MalformedClause, ir.Schedule.String())
	}
	kindTag := strings.ToLower(parts[0])
	chunk := ""
	if len(parts) > 1 {
		chunk = parts[1]
	}
	return &ir.Clause{
		Kind: ir.Schedule, Variant: ir.Enum,
		Modifiers: modifiers, EnumTag: kindTag, EnumArg: chunk,
	}, nil
}

// buildDefaultmap parses "behavior[:category]".
func buildDefaultmap(body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, ir.Defaultmap.String())
	}
	behavior, category, ok := splitModifier(body)
	tag := ""
	arg := ""
	if ok && len(behavior) == 1 {
		tag = behavior[0]
		arg = strings.TrimSpace(category)
	} else {
		tag = strings.ToLower(strings.TrimSpace(body))
	}
	return &ir.Clause{Kind: ir.Defaultmap, Variant: ir.Enum, EnumTag: tag, EnumArg: arg}, nil
}

// buildMapOrDepend parses "[modifier:] item[, item]*", the shape shared by
// OpenMP's map and depend clauses (map-type / dependence-type as the
// modifier). Exotic depend(source)/depend(sink: vec) forms are accepted as
// a single-item list rather than decomposed further; the library does not
// validate dependence semantics.
func buildMapOrDepend(kind ir.ClauseKind, body string, hasBody bool) (*ir.Clause, error) {
	if !hasBody {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	modifiers, rest, ok := splitModifier(body)
	if !ok {
		rest = body
		modifiers = nil
	}
	if strings.TrimSpace(rest) == "" {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	items := splitTopLevel(rest)
	return &ir.Clause{Kind: kind, Variant: ir.List, Modifiers: modifiers, Items: items}, nil
}

// buildWait parses OpenACC's wait([[devnum: int (: or ,)] [queues:] int-list]).
// A bare occurrence (hasBody false) yields an empty WaitData, meaning
// "wait on every queue."
func buildWait(body string, hasBody bool) *ir.Clause {
	wd := &ir.WaitData{}
	if hasBody {
		rest := body
		if devnum, tail, ok := splitDevnum(rest); ok {
			wd.Devnum = devnum
			rest = tail
		}
		rest = strings.TrimPrefix(strings.TrimSpace(rest), "queues:")
		rest = strings.TrimSpace(rest)
		if rest != "" {
			wd.Queues = splitTopLevel(rest)
		}
	}
	return &ir.Clause{Kind: ir.AccWait, Variant: ir.Composite, Wait: wd}
}

// splitDevnum recognizes a leading "devnum: expr :" or "devnum: expr,"
// prefix.
func splitDevnum(body string) (devnum, rest string, ok bool) {
	lower := strings.ToLower(body)
	if !strings.HasPrefix(lower, "devnum") {
		return "", body, false
	}
	after := strings.TrimSpace(body[len("devnum"):])
	hasColon := strings.HasPrefix(after, ":")
	after = strings.TrimPrefix(after, ":")
	depth := 0
	for i := 0; i < len(after); i++ {
		switch after[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return strings.TrimSpace(after[:i]), after[i+1:], true
			}
		case ',':
			if depth == 0 && hasColon {
				return strings.TrimSpace(after[:i]), after[i+1:], true
			}
		}
	}
	return "", body, false
}
