package ir_test

import (
	"testing"

	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/source"
)

func TestDirectiveClausesByKindAndOrder(t *testing.T) {
	clauses := []*ir.Clause{
		{Kind: ir.Private, Variant: ir.List, Items: []string{"a"}},
		{Kind: ir.Shared, Variant: ir.List, Items: []string{"b"}},
		{Kind: ir.Private, Variant: ir.List, Items: []string{"c"}},
	}
	d := ir.New(dirkind.Parallel, lang.C, source.Position{}, clauses)

	if len(d.ClausesInOriginalOrder()) != 3 {
		t.Fatalf("got %d clauses, want 3", len(d.ClausesInOriginalOrder()))
	}
	privates := d.ClausesByKind(ir.Private)
	if len(privates) != 2 {
		t.Fatalf("got %d Private clauses, want 2", len(privates))
	}
	if d.ClausesByKind(ir.Reduction) != nil {
		t.Fatal("expected nil for absent clause kind")
	}
	kinds := d.ClauseKinds()
	if len(kinds) != 2 || kinds[0] != ir.Private || kinds[1] != ir.Shared {
		t.Fatalf("ClauseKinds() = %v, want [Private Shared]", kinds)
	}
}

func TestDirectiveFamily(t *testing.T) {
	d := ir.New(dirkind.AccKernels, lang.C, source.Position{}, nil)
	if d.Family() != lang.OpenACC {
		t.Fatalf("Family() = %v, want OpenACC", d.Family())
	}
}

func TestDirectiveWithLanguageDoesNotMutateOriginal(t *testing.T) {
	d := ir.New(dirkind.Parallel, lang.C, source.Position{}, nil)
	d2 := d.WithLanguage(lang.FortranFree)
	if d.Language != lang.C {
		t.Fatalf("original mutated: Language = %v", d.Language)
	}
	if d2.Language != lang.FortranFree {
		t.Fatalf("copy Language = %v, want FortranFree", d2.Language)
	}
}

func TestClauseTypedAccessorsRejectWrongVariant(t *testing.T) {
	c := &ir.Clause{Kind: ir.Private, Variant: ir.List, Items: []string{"a"}}
	if _, err := c.AsExpression(); err == nil {
		t.Fatal("AsExpression on a List clause should fail")
	}
	if err := c.AsBare(); err == nil {
		t.Fatal("AsBare on a List clause should fail")
	}
	items, _, err := c.AsList()
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	if len(items) != 1 || items[0] != "a" {
		t.Fatalf("items = %v", items)
	}
}

func TestSourceTextWithoutRenderFuncWired(t *testing.T) {
	saved := ir.RenderFunc
	ir.RenderFunc = nil
	defer func() { ir.RenderFunc = saved }()

	d := ir.New(dirkind.Parallel, lang.C, source.Position{}, nil)
	if d.SourceText() != "" {
		t.Fatal("SourceText with nil RenderFunc should return empty string")
	}
}
