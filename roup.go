// Package roup is a parser and intermediate-representation library for
// the OpenMP and OpenACC directive languages as they appear embedded in
// C, C++, and Fortran source. Parse turns one directive line (or
// line-continuation group) into a queryable Directive; Render turns a
// Directive back into canonical directive text; Convert composes both
// across a host-language boundary.
package roup

import (
	"github.com/ouankou/roup/internal/cache"
	"github.com/ouankou/roup/internal/clause"
	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup/internal/render"
	"github.com/ouankou/roup/internal/source"
)

// Cache is the disk-backed parse memo ParseCached consults, re-exported
// so callers never import internal/cache directly.
type Cache = cache.Disk

// OpenCache opens (creating if absent) a disk cache rooted at dir.
func OpenCache(dir string) (*Cache, error) {
	return cache.Open(dir)
}

// OpenDefaultCache opens the disk cache at its standard location
// ($XDG_CACHE_HOME/roup or $HOME/.cache/roup).
func OpenDefaultCache() (*Cache, error) {
	return cache.OpenDefault()
}

// Re-exported so callers never need to import the internal packages
// directly to name a Language, Directive, or Clause value.
type (
	Language   = lang.Language
	Directive  = ir.Directive
	Clause     = ir.Clause
	ClauseKind = ir.ClauseKind
	Variant    = ir.Variant
	DirKind    = dirkind.Kind

	// RenderOptions configures Render beyond the canonical text itself.
	RenderOptions = render.Options
)

const (
	C            = lang.C
	CXX          = lang.CXX
	FortranFree  = lang.FortranFree
	FortranFixed = lang.FortranFixed
)

const (
	Bare       = ir.Bare
	Expression = ir.Expression
	List       = ir.List
	Enum       = ir.Enum
	Composite  = ir.Composite
)

// Parse runs the full A→B→C→D pipeline over one directive line (spec.md
// §2's data flow): it strips the sentinel, folds continuations, tokenizes,
// recognizes the directive kind, parses every clause, and returns the
// resulting Directive. text need not be pre-stripped of its sentinel or
// pre-joined across continuation lines; l selects which continuation and
// sentinel rules apply.
func Parse(text string, l lang.Language) (*ir.Directive, error) {
	body, fam, err := lexer.Preprocess(text, l)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Tokenize(body)
	if err != nil {
		return nil, err
	}
	s := lexer.NewStream(toks)
	kind, err := dirkind.Recognize(s, fam)
	if err != nil {
		return nil, err
	}
	clauses, err := clause.Parse(s, fam)
	if err != nil {
		return nil, err
	}
	return ir.New(kind, l, source.Position{}, clauses), nil
}

// ParseAll scans raw, a block of host-language source, for every line
// that carries a recognizable directive sentinel, parsing each one
// independently. Lines with no sentinel are skipped rather than treated
// as an error; a line with a sentinel that fails to parse leaves a nil
// entry at its position in the returned directive slice, and its error is
// appended to the returned error slice, which holds failures only, in the
// same order as those nil entries. This is the
// Go-native analogue of the handle layer's parse-result aggregate
// (spec.md §4.G): a single call yielding every directive a source block
// contains, instead of one handle at a time.
func ParseAll(raw string, l lang.Language) ([]*ir.Directive, []error) {
	var directives []*ir.Directive
	var errs []error

	for _, group := range lexer.SplitLogicalLines(raw, l) {
		d, err := Parse(group, l)
		switch {
		case err == nil:
			directives = append(directives, d)
		case diag.CodeOf(err) == diag.NoDirective:
			continue
		default:
			directives = append(directives, nil)
			errs = append(errs, err)
		}
	}
	return directives, errs
}

// ParseCached is Parse fronted by a disk cache: a hit decodes and returns
// a stored Directive without re-running the pipeline; a miss parses
// normally and, on success, writes the result back for next time. A nil
// c disables caching and behaves exactly like Parse.
func ParseCached(c *Cache, text string, l lang.Language) (*ir.Directive, error) {
	key := cache.KeyFor(text, l)
	if d, ok, err := c.Get(key); err == nil && ok {
		return d, nil
	}
	d, err := Parse(text, l)
	if err != nil {
		return nil, err
	}
	_ = c.Put(key, d)
	return d, nil
}

// Render produces d's canonical directive string (component E, spec.md
// §4.E), independent of however the source text that produced it was
// spelled.
func Render(d *ir.Directive) string {
	return render.Render(d)
}

// RenderWithOptions is Render with explicit output options.
func RenderWithOptions(d *ir.Directive, opts render.Options) string {
	return render.RenderWithOptions(d, opts)
}

// Convert parses text as dialect from and re-renders it in dialect to
// (component F, spec.md §4.F): Convert(text, from, to) =
// Render(Parse(text, from), to). The directive's Language field is the
// only thing that changes; clause payloads are carried through verbatim
// since expression arguments are opaque token runs, never evaluated.
func Convert(text string, from, to lang.Language) (string, error) {
	d, err := Parse(text, from)
	if err != nil {
		return "", err
	}
	return Render(d.WithLanguage(to)), nil
}
