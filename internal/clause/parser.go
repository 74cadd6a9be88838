package clause

import (
	"strings"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup/internal/token"
)

// Parse consumes every remaining clause off s (spec.md §4.C): clauses are
// optionally comma-separated, each is one Ident keyword optionally
// followed by a ParenBody argument, and unrecognized keywords or
// malformed argument bodies fail the whole parse rather than skip the
// clause. Clauses are returned in source order.
func Parse(s *lexer.Stream, fam lang.Family) ([]*ir.Clause, error) {
	table := ir.SurfaceTable(fam)
	var out []*ir.Clause

	for !s.AtEOF() {
		if s.Peek().Kind == token.Comma {
			s.Next()
			if s.AtEOF() {
				break
			}
		}

		tok := s.Peek()
		if tok.Kind != token.Ident {
			return nil, diag.New(diag.MalformedClause, tok.Kind.String())
		}
		s.Next()

		kind, ok := table[strings.ToLower(tok.Text)]
		if !ok {
			return nil, diag.New(diag.MalformedClause, tok.Text)
		}

		body := ""
		hasBody := false
		if s.Peek().Kind == token.ParenBody {
			body = s.Next().Text
			hasBody = true
		}

		c, err := build(kind, body, hasBody)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// build dispatches a single clause to its builder: custom kinds first,
// then the table-driven default for everything else.
func build(kind ir.ClauseKind, body string, hasBody bool) (*ir.Clause, error) {
	switch kind {
	case ir.Reduction, ir.AccReduction:
		return buildReduction(kind, body, hasBody)
	case ir.Schedule:
		return buildSchedule(body, hasBody)
	case ir.Map, ir.Depend:
		return buildMapOrDepend(kind, body, hasBody)
	case ir.DefaultOmp, ir.ProcBind, ir.AtomicDefaultMemOrder, ir.DeviceType,
		ir.AccDefault, ir.AccDeviceType:
		return buildEnumTag(kind, body, hasBody)
	case ir.Defaultmap:
		return buildDefaultmap(body, hasBody)
	case ir.AccWait:
		return buildWait(body, hasBody), nil
	case ir.AccDefaultAsync:
		return buildExpression(kind, body, hasBody), nil
	}

	variant, ok := defaultVariant[kind]
	if !ok {
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
	switch variant {
	case ir.Bare:
		return buildBare(kind, hasBody)
	case ir.Expression:
		return buildExpression(kind, body, hasBody), nil
	case ir.List:
		return buildList(kind, body, hasBody)
	case ir.Enum:
		return buildEnumTag(kind, body, hasBody)
	default:
		return nil, diag.New(diag.MalformedClause, kind.String())
	}
}
