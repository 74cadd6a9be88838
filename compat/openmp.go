package compat

import (
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
)

// OpenMPDirective reconstructs the legacy OpenMPDirective class surface
// (original_source/compat/ompparser) on top of a registry.Default handle.
// It wraps exactly one parsed directive; calling a method after Free
// returns diag.InvalidHandle.
type OpenMPDirective struct {
	dh directiveHandle
}

// ParseOpenMP parses text as a single OpenMP directive. override selects
// the host language; pass nil to use the process-wide default set by
// SetLang.
func ParseOpenMP(text string, override *lang.Language) (*OpenMPDirective, error) {
	dh, err := parseInto(text, resolveLang(override), lang.OpenMP)
	if err != nil {
		return nil, err
	}
	return &OpenMPDirective{dh: dh}, nil
}

// Free releases the handle backing o. Freeing twice is a no-op.
func (o *OpenMPDirective) Free() {
	o.dh.free()
}

// Kind reports o's directive kind, the legacy surface's getKind.
func (o *OpenMPDirective) Kind() (dirkind.Kind, error) {
	return o.dh.kind()
}

// BaseLang reports the host language o was parsed against, the legacy
// surface's getBaseLang.
func (o *OpenMPDirective) BaseLang() (lang.Language, error) {
	return o.dh.baseLang()
}

// AllClauses returns every clause on o partitioned by kind, the legacy
// surface's getAllClauses.
func (o *OpenMPDirective) AllClauses() (map[ir.ClauseKind][]*ir.Clause, error) {
	return o.dh.allClauses()
}

// ClausesInOriginalOrder returns o's clauses in source order, the legacy
// surface's getClausesInOriginalOrder.
func (o *OpenMPDirective) ClausesInOriginalOrder() ([]*ir.Clause, error) {
	return o.dh.clausesInOriginalOrder()
}

// String renders o back to canonical directive text, the legacy
// surface's toString.
func (o *OpenMPDirective) String() (string, error) {
	return o.dh.string()
}

// GeneratePragmaString renders o with a caller-supplied sentinel prefix,
// trailing continuation marker, and suffix, reproducing the legacy
// surface's generatePragmaString(prefix, suffix, continuation). Passing
// "" for prefix falls back to the sentinel Render would have chosen.
func (o *OpenMPDirective) GeneratePragmaString(prefix, suffix, continuation string) (string, error) {
	return o.dh.generatePragmaString(prefix, suffix, continuation)
}
