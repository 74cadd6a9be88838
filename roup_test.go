package roup_test

import (
	"testing"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup"
)

func TestParseSimpleDirective(t *testing.T) {
	d, err := roup.Parse("#pragma omp parallel for num_threads(4)", roup.C)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Kind != dirkind.ParallelFor {
		t.Fatalf("Kind = %v, want ParallelFor", d.Kind)
	}
	clauses := d.ClausesInOriginalOrder()
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	expr, err := clauses[0].AsExpression()
	if err != nil || expr != "4" {
		t.Fatalf("expr = %q, err = %v", expr, err)
	}
}

func TestParseRejectsUnknownDirective(t *testing.T) {
	_, err := roup.Parse("#pragma omp bogus", roup.C)
	if diag.CodeOf(err) != diag.UnknownDirective {
		t.Fatalf("CodeOf(err) = %v, want UnknownDirective", diag.CodeOf(err))
	}
}

func TestParseAllSkipsNonDirectiveLines(t *testing.T) {
	src := "int x = 1;\n#pragma omp parallel\nint y = 2;\n#pragma acc kernels\n"
	directives, errs := roup.ParseAll(src, roup.C)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(directives))
	}
	if directives[0].Kind != dirkind.Parallel {
		t.Fatalf("directives[0].Kind = %v, want Parallel", directives[0].Kind)
	}
	if directives[1].Kind != dirkind.AccKernels {
		t.Fatalf("directives[1].Kind = %v, want AccKernels", directives[1].Kind)
	}
}

func TestParseAllRecordsFailuresByIndex(t *testing.T) {
	src := "#pragma omp parallel\n#pragma omp bogus\n"
	directives, errs := roup.ParseAll(src, roup.C)
	if len(directives) != 2 {
		t.Fatalf("got %d directive slots, want 2", len(directives))
	}
	if directives[0] == nil {
		t.Fatal("directives[0] should be the successfully parsed directive")
	}
	if directives[1] != nil {
		t.Fatal("directives[1] should be nil after a failed parse")
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
}

func TestParseAllJoinsContinuationLines(t *testing.T) {
	src := "#pragma omp parallel \\\n  num_threads(4)\n"
	directives, errs := roup.ParseAll(src, roup.C)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(directives))
	}
	if len(directives[0].ClausesInOriginalOrder()) != 1 {
		t.Fatalf("expected the continuation line to be folded into one directive")
	}
}

func TestRenderRoundTrip(t *testing.T) {
	text := "#pragma omp parallel for num_threads(4) private(a, b)"
	d, err := roup.Parse(text, roup.C)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := roup.Render(d); got != text {
		t.Fatalf("Render() = %q, want %q", got, text)
	}
}

func TestRenderWithOptionsTrailingNewline(t *testing.T) {
	d, err := roup.Parse("#pragma omp parallel", roup.C)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := roup.RenderWithOptions(d, roup.RenderOptions{TrailingNewline: true})
	if got != "#pragma omp parallel\n" {
		t.Fatalf("RenderWithOptions() = %q", got)
	}
}

func TestConvertCToFortranFree(t *testing.T) {
	got, err := roup.Convert("#pragma omp parallel for", roup.C, roup.FortranFree)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "!$omp parallel do" {
		t.Fatalf("Convert() = %q, want %q", got, "!$omp parallel do")
	}
}

func TestConvertFortranFixedToCXX(t *testing.T) {
	got, err := roup.Convert("c$acc kernels", roup.FortranFixed, roup.CXX)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "#pragma acc kernels" {
		t.Fatalf("Convert() = %q, want %q", got, "#pragma acc kernels")
	}
}

func TestParseCachedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := roup.OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	text := "#pragma omp parallel num_threads(8)"

	first, err := roup.ParseCached(c, text, roup.C)
	if err != nil {
		t.Fatalf("ParseCached (miss): %v", err)
	}
	second, err := roup.ParseCached(c, text, roup.C)
	if err != nil {
		t.Fatalf("ParseCached (hit): %v", err)
	}
	if roup.Render(first) != roup.Render(second) {
		t.Fatalf("cached round trip mismatch: %q vs %q", roup.Render(first), roup.Render(second))
	}
}

func TestParseCachedWithNilCacheBehavesLikeParse(t *testing.T) {
	d, err := roup.ParseCached(nil, "#pragma omp parallel", roup.C)
	if err != nil {
		t.Fatalf("ParseCached with nil cache: %v", err)
	}
	if d.Kind != dirkind.Parallel {
		t.Fatalf("Kind = %v, want Parallel", d.Kind)
	}
}
