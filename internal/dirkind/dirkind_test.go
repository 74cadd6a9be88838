package dirkind_test

import (
	"testing"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
)

func recognize(t *testing.T, body string, fam lang.Family) dirkind.Kind {
	t.Helper()
	toks, err := lexer.Tokenize(body)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", body, err)
	}
	s := lexer.NewStream(toks)
	kind, err := dirkind.Recognize(s, fam)
	if err != nil {
		t.Fatalf("Recognize(%q): %v", body, err)
	}
	return kind
}

func TestRecognizeLongestMatch(t *testing.T) {
	tests := []struct {
		body string
		fam  lang.Family
		want dirkind.Kind
	}{
		{"parallel for simd", lang.OpenMP, dirkind.ParallelForSimd},
		{"parallel for", lang.OpenMP, dirkind.ParallelFor},
		{"parallel", lang.OpenMP, dirkind.Parallel},
		{"target teams distribute parallel for simd", lang.OpenMP, dirkind.TargetTeamsDistributeParallelForSimd},
		{"parallel loop", lang.OpenACC, dirkind.AccParallelLoop},
		{"parallel", lang.OpenACC, dirkind.AccParallel},
		{"end parallel", lang.OpenACC, dirkind.AccEndParallel},
		{"end kernels", lang.OpenACC, dirkind.AccEndKernels},
		{"end serial", lang.OpenACC, dirkind.AccEndSerial},
		{"end data", lang.OpenACC, dirkind.AccEndData},
		{"end host data", lang.OpenACC, dirkind.AccEndHostData},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			kind := recognize(t, tt.body, tt.fam)
			if kind != tt.want {
				t.Fatalf("Recognize(%q) = %v, want %v", tt.body, kind, tt.want)
			}
		})
	}
}

func TestRecognizeStopsBeforeClauses(t *testing.T) {
	toks, err := lexer.Tokenize("parallel for num_threads(4)")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	s := lexer.NewStream(toks)
	kind, err := dirkind.Recognize(s, lang.OpenMP)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if kind != dirkind.ParallelFor {
		t.Fatalf("kind = %v, want ParallelFor", kind)
	}
	next := s.Next()
	if next.Text != "num_threads" {
		t.Fatalf("Recognize consumed too much: next token %+v", next)
	}
}

func TestRecognizeUnknownDirective(t *testing.T) {
	toks, err := lexer.Tokenize("bogus_directive")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	s := lexer.NewStream(toks)
	_, err = dirkind.Recognize(s, lang.OpenMP)
	if diag.CodeOf(err) != diag.UnknownDirective {
		t.Fatalf("CodeOf(err) = %v, want UnknownDirective", diag.CodeOf(err))
	}
}

func TestKindFamily(t *testing.T) {
	if dirkind.Parallel.Family() != lang.OpenMP {
		t.Fatal("Parallel should belong to OpenMP")
	}
	if dirkind.AccParallel.Family() != lang.OpenACC {
		t.Fatal("AccParallel should belong to OpenACC")
	}
}
