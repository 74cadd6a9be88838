package lexer_test

import (
	"testing"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup/internal/token"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		lang    lang.Language
		wantFam lang.Family
		wantErr diag.Code
	}{
		{"c omp", "#pragma omp parallel for", lang.C, lang.OpenMP, diag.UnknownCode},
		{"c acc", "#pragma acc kernels", lang.C, lang.OpenACC, diag.UnknownCode},
		{"fortran free omp", "!$omp parallel", lang.FortranFree, lang.OpenMP, diag.UnknownCode},
		{"fortran fixed acc", "c$acc parallel      ", lang.FortranFixed, lang.OpenACC, diag.UnknownCode},
		{"no sentinel", "int x = 1;", lang.C, 0, diag.NoDirective},
		{"invalid utf8", "#pragma omp \xff", lang.C, 0, diag.InvalidEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fam, err := lexer.Preprocess(tt.raw, tt.lang)
			if tt.wantErr != diag.UnknownCode {
				if diag.CodeOf(err) != tt.wantErr {
					t.Fatalf("CodeOf(err) = %v, want %v", diag.CodeOf(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fam != tt.wantFam {
				t.Fatalf("fam = %v, want %v", fam, tt.wantFam)
			}
		})
	}
}

func TestPreprocessStripsSentinelAndKeyword(t *testing.T) {
	rest, fam, err := lexer.Preprocess("#pragma omp parallel for num_threads(4)", lang.C)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fam != lang.OpenMP {
		t.Fatalf("fam = %v, want OpenMP", fam)
	}
	if rest != "parallel for num_threads(4)" {
		t.Fatalf("rest = %q", rest)
	}
}

func TestTokenizeParenBody(t *testing.T) {
	toks, err := lexer.Tokenize("num_threads(4)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 { // ident, paren-body, eof
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.Ident || toks[0].Text != "num_threads" {
		t.Fatalf("tok[0] = %+v", toks[0])
	}
	if toks[1].Kind != token.ParenBody || toks[1].Text != "4" {
		t.Fatalf("tok[1] = %+v", toks[1])
	}
	if toks[2].Kind != token.EOF {
		t.Fatalf("tok[2] = %+v", toks[2])
	}
}

func TestTokenizeUnbalancedParens(t *testing.T) {
	_, err := lexer.Tokenize("private(a, b")
	if diag.CodeOf(err) != diag.LexError {
		t.Fatalf("CodeOf(err) = %v, want LexError", diag.CodeOf(err))
	}
}

func TestSplitLogicalLinesBackslashContinuation(t *testing.T) {
	raw := "#pragma omp parallel \\\n  num_threads(4)\nint x;"
	groups := lexer.SplitLogicalLines(raw, lang.C)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %q", len(groups), groups)
	}
	if groups[0] != "#pragma omp parallel \\\n  num_threads(4)" {
		t.Fatalf("groups[0] = %q", groups[0])
	}
	if groups[1] != "int x;" {
		t.Fatalf("groups[1] = %q", groups[1])
	}
}

func TestSplitLogicalLinesFortranFreeContinuation(t *testing.T) {
	raw := "!$omp parallel &\n!$omp&  num_threads(4)\nprint *, 1"
	groups := lexer.SplitLogicalLines(raw, lang.FortranFree)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %q", len(groups), groups)
	}
}

func TestStream(t *testing.T) {
	toks, err := lexer.Tokenize("a, b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := lexer.NewStream(toks)
	if s.AtEOF() {
		t.Fatal("stream reports EOF before consuming any tokens")
	}
	mark := s.Mark()
	first := s.Next()
	if first.Kind != token.Ident || first.Text != "a" {
		t.Fatalf("first = %+v", first)
	}
	s.Reset(mark)
	if s.Next().Text != "a" {
		t.Fatal("Reset did not rewind the stream")
	}
}
