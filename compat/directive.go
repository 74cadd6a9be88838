package compat

import (
	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/registry"
	"github.com/ouankou/roup/internal/render"
	"github.com/ouankou/roup"
)

// directiveHandle is the shared state behind both OpenMPDirective and
// OpenACCDirective: a handle into the same registry.Default table the C
// ABI in package capi reads, so a handle minted by one surface is valid
// input to the other (spec.md §4.G's "both surfaces share one registry").
type directiveHandle struct {
	h registry.Handle
}

func parseInto(text string, l lang.Language, want lang.Family) (directiveHandle, error) {
	d, err := roup.Parse(text, l)
	if err != nil {
		return directiveHandle{}, err
	}
	if d.Family() != want {
		return directiveHandle{}, diag.New(diag.NoDirective, text)
	}
	return directiveHandle{h: registry.Default.Insert(registry.KindDirective, d)}, nil
}

func (dh directiveHandle) directive() (*ir.Directive, error) {
	obj, ok := registry.Default.Get(dh.h)
	if !ok {
		return nil, diag.New(diag.InvalidHandle, "")
	}
	d, ok := obj.(*ir.Directive)
	if !ok {
		return nil, diag.New(diag.InvalidHandle, "")
	}
	return d, nil
}

func (dh directiveHandle) free() {
	registry.Default.Remove(dh.h)
}

func (dh directiveHandle) kind() (dirkind.Kind, error) {
	d, err := dh.directive()
	if err != nil {
		return dirkind.Unknown, err
	}
	return d.Kind, nil
}

func (dh directiveHandle) baseLang() (lang.Language, error) {
	d, err := dh.directive()
	if err != nil {
		return 0, err
	}
	return d.Language, nil
}

func (dh directiveHandle) allClauses() (map[ir.ClauseKind][]*ir.Clause, error) {
	d, err := dh.directive()
	if err != nil {
		return nil, err
	}
	out := make(map[ir.ClauseKind][]*ir.Clause, len(d.ClauseKinds()))
	for _, k := range d.ClauseKinds() {
		out[k] = d.ClausesByKind(k)
	}
	return out, nil
}

func (dh directiveHandle) clausesInOriginalOrder() ([]*ir.Clause, error) {
	d, err := dh.directive()
	if err != nil {
		return nil, err
	}
	return d.ClausesInOriginalOrder(), nil
}

func (dh directiveHandle) string() (string, error) {
	d, err := dh.directive()
	if err != nil {
		return "", err
	}
	return render.Render(d), nil
}

// generatePragmaString reproduces the legacy generatePragmaString(prefix,
// suffix, continuation) signature: prefix overrides the rendered
// sentinel when non-empty, continuation is appended immediately after
// the directive body (its usual role is a trailing line-continuation
// marker), and suffix is appended last.
func (dh directiveHandle) generatePragmaString(prefix, suffix, continuation string) (string, error) {
	d, err := dh.directive()
	if err != nil {
		return "", err
	}
	if prefix == "" {
		prefix = render.SentinelPrefix(d.Language, d.Family())
	}
	return prefix + render.Body(d) + continuation + suffix, nil
}
