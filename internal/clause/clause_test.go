package clause_test

import (
	"testing"

	"github.com/ouankou/roup/internal/clause"
	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
)

func parseClauses(t *testing.T, body string, fam lang.Family) []*ir.Clause {
	t.Helper()
	toks, err := lexer.Tokenize(body)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", body, err)
	}
	s := lexer.NewStream(toks)
	clauses, err := clause.Parse(s, fam)
	if err != nil {
		t.Fatalf("Parse(%q): %v", body, err)
	}
	return clauses
}

func TestParseBareClause(t *testing.T) {
	clauses := parseClauses(t, "nowait", lang.OpenMP)
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	if err := clauses[0].AsBare(); err != nil {
		t.Fatalf("AsBare: %v", err)
	}
}

func TestParseExpressionClause(t *testing.T) {
	clauses := parseClauses(t, "num_threads(4)", lang.OpenMP)
	expr, err := clauses[0].AsExpression()
	if err != nil {
		t.Fatalf("AsExpression: %v", err)
	}
	if expr != "4" {
		t.Fatalf("expr = %q, want %q", expr, "4")
	}
}

func TestParseListClause(t *testing.T) {
	clauses := parseClauses(t, "private(a, b, c)", lang.OpenMP)
	items, modifiers, err := clauses[0].AsList()
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(modifiers) != 0 {
		t.Fatalf("modifiers = %v, want none", modifiers)
	}
	want := []string{"a", "b", "c"}
	for i, item := range items {
		if item != want[i] {
			t.Fatalf("items[%d] = %q, want %q", i, item, want[i])
		}
	}
}

func TestParseReductionClause(t *testing.T) {
	clauses := parseClauses(t, "reduction(+: sum, total)", lang.OpenMP)
	tag, _, items, err := clauses[0].AsEnum()
	if err != nil {
		t.Fatalf("AsEnum: %v", err)
	}
	if tag != "+" {
		t.Fatalf("tag = %q, want %q", tag, "+")
	}
	if len(items) != 2 || items[0] != "sum" || items[1] != "total" {
		t.Fatalf("items = %v", items)
	}
}

func TestParseReductionBuiltinOperator(t *testing.T) {
	clauses := parseClauses(t, "reduction(max: peak)", lang.OpenMP)
	tag, op, items, err := clauses[0].AsEnum()
	if err != nil {
		t.Fatalf("AsEnum: %v", err)
	}
	if tag != "max" {
		t.Fatalf("tag = %q, want %q", tag, "max")
	}
	if op != "max" {
		t.Fatalf("op = %q, want %q", op, "max")
	}
	if len(items) != 1 || items[0] != "peak" {
		t.Fatalf("items = %v", items)
	}
}

func TestParseReductionCustomIdentifier(t *testing.T) {
	clauses := parseClauses(t, "reduction(MyCombiner: acc)", lang.OpenMP)
	tag, op, items, err := clauses[0].AsEnum()
	if err != nil {
		t.Fatalf("AsEnum: %v", err)
	}
	if op != "custom" {
		t.Fatalf("op = %q, want %q", op, "custom")
	}
	if tag != "MyCombiner" {
		t.Fatalf("tag = %q, want case preserved %q", tag, "MyCombiner")
	}
	if len(items) != 1 || items[0] != "acc" {
		t.Fatalf("items = %v", items)
	}
}

func TestParseScheduleClause(t *testing.T) {
	clauses := parseClauses(t, "schedule(dynamic, 4)", lang.OpenMP)
	tag, arg, _, err := clauses[0].AsEnum()
	if err != nil {
		t.Fatalf("AsEnum: %v", err)
	}
	if tag != "dynamic" || arg != "4" {
		t.Fatalf("tag=%q arg=%q", tag, arg)
	}
}

func TestParseMapClauseWithModifier(t *testing.T) {
	clauses := parseClauses(t, "map(tofrom: a[0:n])", lang.OpenMP)
	items, modifiers, err := clauses[0].AsList()
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(modifiers) != 1 || modifiers[0] != "tofrom" {
		t.Fatalf("modifiers = %v", modifiers)
	}
	if len(items) != 1 || items[0] != "a[0:n]" {
		t.Fatalf("items = %v", items)
	}
}

func TestParseAccWaitBare(t *testing.T) {
	clauses := parseClauses(t, "wait", lang.OpenACC)
	wd, err := clauses[0].AsComposite()
	if err != nil {
		t.Fatalf("AsComposite: %v", err)
	}
	if wd.Devnum != "" || len(wd.Queues) != 0 {
		t.Fatalf("wd = %+v, want empty", wd)
	}
}

func TestParseAccWaitWithDevnum(t *testing.T) {
	clauses := parseClauses(t, "wait(devnum: 0: 1, 2)", lang.OpenACC)
	wd, err := clauses[0].AsComposite()
	if err != nil {
		t.Fatalf("AsComposite: %v", err)
	}
	if wd.Devnum != "0" {
		t.Fatalf("devnum = %q, want %q", wd.Devnum, "0")
	}
	if len(wd.Queues) != 2 || wd.Queues[0] != "1" || wd.Queues[1] != "2" {
		t.Fatalf("queues = %v", wd.Queues)
	}
}

func TestParseClauseAliasNormalization(t *testing.T) {
	clauses := parseClauses(t, "pcopy(a)", lang.OpenACC)
	if clauses[0].Kind != ir.AccCopy {
		t.Fatalf("pcopy did not normalize to copy: got %v", clauses[0].Kind)
	}
}

func TestParseUnknownClauseKeyword(t *testing.T) {
	toks, err := lexer.Tokenize("bogus(1)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	s := lexer.NewStream(toks)
	_, err = clause.Parse(s, lang.OpenMP)
	if diag.CodeOf(err) != diag.MalformedClause {
		t.Fatalf("CodeOf(err) = %v, want MalformedClause", diag.CodeOf(err))
	}
}

func parseClausesExpectError(t *testing.T, body string, fam lang.Family) error {
	t.Helper()
	toks, err := lexer.Tokenize(body)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", body, err)
	}
	s := lexer.NewStream(toks)
	_, err = clause.Parse(s, fam)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want MalformedClause", body)
	}
	return err
}

func TestParseEmptyListBodyIsMalformed(t *testing.T) {
	err := parseClausesExpectError(t, "private()", lang.OpenMP)
	if diag.CodeOf(err) != diag.MalformedClause {
		t.Fatalf("CodeOf(err) = %v, want MalformedClause", diag.CodeOf(err))
	}
}

func TestParseEmptyMapBodyIsMalformed(t *testing.T) {
	err := parseClausesExpectError(t, "map()", lang.OpenMP)
	if diag.CodeOf(err) != diag.MalformedClause {
		t.Fatalf("CodeOf(err) = %v, want MalformedClause", diag.CodeOf(err))
	}
}

func TestParseEmptyDependBodyIsMalformed(t *testing.T) {
	err := parseClausesExpectError(t, "depend()", lang.OpenMP)
	if diag.CodeOf(err) != diag.MalformedClause {
		t.Fatalf("CodeOf(err) = %v, want MalformedClause", diag.CodeOf(err))
	}
}

func TestParseEmptyMapBodyWithModifierIsMalformed(t *testing.T) {
	err := parseClausesExpectError(t, "map(tofrom:)", lang.OpenMP)
	if diag.CodeOf(err) != diag.MalformedClause {
		t.Fatalf("CodeOf(err) = %v, want MalformedClause", diag.CodeOf(err))
	}
}

func TestParseMultipleClausesInOrder(t *testing.T) {
	clauses := parseClauses(t, "private(a) shared(b) nowait", lang.OpenMP)
	if len(clauses) != 3 {
		t.Fatalf("got %d clauses, want 3", len(clauses))
	}
	if clauses[0].Kind != ir.Private || clauses[1].Kind != ir.Shared {
		t.Fatalf("unexpected order: %+v", clauses)
	}
}
