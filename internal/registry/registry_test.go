package registry_test

import (
	"testing"

	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/registry"
)

func TestInsertGetRemove(t *testing.T) {
	r := registry.New()
	h := r.Insert(registry.KindDirective, "payload")
	if h == registry.Invalid {
		t.Fatal("Insert returned the invalid handle")
	}
	if h.Kind() != registry.KindDirective {
		t.Fatalf("Kind() = %v, want KindDirective", h.Kind())
	}
	obj, ok := r.Get(h)
	if !ok || obj != "payload" {
		t.Fatalf("Get() = %v, %v, want \"payload\", true", obj, ok)
	}
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}
	r.Remove(h)
	if _, ok := r.Get(h); ok {
		t.Fatal("Get() after Remove should report false")
	}
	if r.Count() != 0 {
		t.Fatalf("Count() after Remove = %d, want 0", r.Count())
	}
}

func TestGetOnInvalidHandle(t *testing.T) {
	r := registry.New()
	if _, ok := r.Get(registry.Invalid); ok {
		t.Fatal("Get(Invalid) should report false")
	}
}

func TestRemoveOnAbsentHandleIsNoop(t *testing.T) {
	r := registry.New()
	r.Remove(registry.Handle(12345))
}

func TestHandlesOfDifferentKindsDoNotCollide(t *testing.T) {
	r := registry.New()
	h1 := r.Insert(registry.KindDirective, 1)
	h2 := r.Insert(registry.KindClause, 2)
	if h1 == h2 {
		t.Fatal("distinct inserts produced the same handle")
	}
	if h1.Kind() == h2.Kind() {
		t.Fatal("expected distinct kinds")
	}
}

func TestParseResultTakeAllDrainsOnce(t *testing.T) {
	pr := &registry.ParseResult{Directives: []*ir.Directive{{}, {}}}
	first := pr.TakeAll()
	if len(first) != 2 {
		t.Fatalf("got %d directives, want 2", len(first))
	}
	second := pr.TakeAll()
	if second != nil {
		t.Fatalf("second TakeAll() = %v, want nil", second)
	}
}

func TestRemoveCascadesToChildren(t *testing.T) {
	r := registry.New()
	parent := r.Insert(registry.KindDirective, "directive")
	child := r.InsertChild(parent, registry.KindClause, "clause")
	grandchild := r.InsertChild(child, registry.KindClauseCursor, "cursor")

	r.Remove(parent)

	if _, ok := r.Get(parent); ok {
		t.Fatal("Get(parent) after Remove should report false")
	}
	if _, ok := r.Get(child); ok {
		t.Fatal("Get(child) after removing parent should report false")
	}
	if _, ok := r.Get(grandchild); ok {
		t.Fatal("Get(grandchild) after removing parent should report false")
	}
	if r.Count() != 0 {
		t.Fatalf("Count() after cascade = %d, want 0", r.Count())
	}
}

func TestRemoveChildLeavesParentIntact(t *testing.T) {
	r := registry.New()
	parent := r.Insert(registry.KindDirective, "directive")
	child := r.InsertChild(parent, registry.KindClause, "clause")

	r.Remove(child)

	if _, ok := r.Get(child); ok {
		t.Fatal("Get(child) after Remove should report false")
	}
	if obj, ok := r.Get(parent); !ok || obj != "directive" {
		t.Fatalf("Get(parent) = %v, %v, want \"directive\", true", obj, ok)
	}
	if r.Count() != 1 {
		t.Fatalf("Count() after removing child = %d, want 1", r.Count())
	}
}

func TestInsertChildWithInvalidParentBehavesLikeInsert(t *testing.T) {
	r := registry.New()
	h := r.InsertChild(registry.Invalid, registry.KindClause, "orphan")
	if obj, ok := r.Get(h); !ok || obj != "orphan" {
		t.Fatalf("Get(h) = %v, %v, want \"orphan\", true", obj, ok)
	}
	r.Remove(h)
	if _, ok := r.Get(h); ok {
		t.Fatal("Get(h) after Remove should report false")
	}
}

func TestClauseCursorWalk(t *testing.T) {
	clauses := []*ir.Clause{{Expr: "a"}, {Expr: "b"}, {Expr: "c"}}
	cur := registry.NewClauseCursor(clauses)

	if cur.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", cur.Total())
	}
	if cur.Position() != -1 {
		t.Fatalf("Position() before iteration = %d, want -1", cur.Position())
	}
	if _, ok := cur.Current(); ok {
		t.Fatal("Current() before Next() should report false")
	}

	c, ok := cur.Next()
	if !ok || c.Expr != "a" {
		t.Fatalf("first Next() = %+v, %v", c, ok)
	}
	cur.Next()
	c, ok = cur.Current()
	if !ok || c.Expr != "b" {
		t.Fatalf("Current() = %+v, %v, want b", c, ok)
	}

	cur.Next()
	if !cur.IsDone() {
		t.Fatal("cursor should be done after the third Next()")
	}
	if _, ok := cur.Next(); ok {
		t.Fatal("Next() past the end should report false")
	}

	cur.Reset()
	if cur.Position() != -1 || cur.IsDone() {
		t.Fatal("Reset() should rewind to the initial position")
	}

	at, ok := cur.At(2)
	if !ok || at.Expr != "c" {
		t.Fatalf("At(2) = %+v, %v, want c", at, ok)
	}
	if _, ok := cur.At(99); ok {
		t.Fatal("At() out of range should report false")
	}
}
