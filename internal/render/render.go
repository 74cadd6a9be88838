package render

import (
	"strings"

	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
)

func init() {
	ir.RenderFunc = Render
}

// Render produces d's canonical directive string (spec.md §4.E) using the
// zero-value Options.
func Render(d *ir.Directive) string {
	return RenderWithOptions(d, Options{})
}

// RenderWithOptions is Render with explicit output options.
func RenderWithOptions(d *ir.Directive, opts Options) string {
	var w writer
	w.WriteString(sentinelPrefix(d.Language, d.Family()))
	w.WriteString(Body(d))
	if opts.TrailingNewline {
		w.WriteByte('\n')
	}
	return w.String()
}

// Body renders the keywords and clauses of d without its sentinel prefix,
// for callers (package compat's generatePragmaString façade) that supply
// their own prefix rather than the one d.Language would select.
func Body(d *ir.Directive) string {
	var w writer
	w.WriteString(strings.Join(keywords(d), " "))
	for _, c := range d.ClausesInOriginalOrder() {
		w.Space()
		w.WriteString(renderClause(c))
	}
	return w.String()
}

// SentinelPrefix exposes the sentinel Render would choose for (l, fam)
// without rendering a full directive.
func SentinelPrefix(l lang.Language, fam lang.Family) string {
	return sentinelPrefix(l, fam)
}

// keywords returns d.Kind's canonical word sequence, substituting "do"
// for "for" in Fortran mode — the one host-language keyword mapping
// spec.md §4.E names.
func keywords(d *ir.Directive) []string {
	words := d.Kind.Words()
	if !d.Language.IsFortran() {
		return words
	}
	out := make([]string, len(words))
	for i, word := range words {
		if word == "for" {
			word = "do"
		}
		out[i] = word
	}
	return out
}

func renderClause(c *ir.Clause) string {
	keyword := c.Kind.String()
	switch c.Variant {
	case ir.Bare:
		return keyword
	case ir.Expression:
		if c.Expr == "" {
			return keyword
		}
		return keyword + "(" + c.Expr + ")"
	case ir.List:
		return keyword + "(" + renderListBody(c) + ")"
	case ir.Enum:
		return keyword + "(" + renderEnumBody(c) + ")"
	case ir.Composite:
		return renderWaitClause(c)
	default:
		return keyword
	}
}

func renderListBody(c *ir.Clause) string {
	var b strings.Builder
	if len(c.Modifiers) > 0 {
		b.WriteString(strings.Join(c.Modifiers, ", "))
		b.WriteString(": ")
	}
	b.WriteString(strings.Join(c.Items, ", "))
	return b.String()
}

func renderEnumBody(c *ir.Clause) string {
	switch c.Kind {
	case ir.Reduction, ir.AccReduction:
		return c.EnumTag + ": " + strings.Join(c.Items, ", ")
	case ir.Schedule:
		var b strings.Builder
		if len(c.Modifiers) > 0 {
			b.WriteString(strings.Join(c.Modifiers, ", "))
			b.WriteString(": ")
		}
		b.WriteString(c.EnumTag)
		if c.EnumArg != "" {
			b.WriteString(", ")
			b.WriteString(c.EnumArg)
		}
		return b.String()
	case ir.Defaultmap:
		if c.EnumArg != "" {
			return c.EnumTag + ": " + c.EnumArg
		}
		return c.EnumTag
	default:
		return c.EnumTag
	}
}

func renderWaitClause(c *ir.Clause) string {
	keyword := c.Kind.String()
	if c.Wait == nil || (c.Wait.Devnum == "" && len(c.Wait.Queues) == 0) {
		return keyword
	}
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteByte('(')
	if c.Wait.Devnum != "" {
		b.WriteString("devnum: ")
		b.WriteString(c.Wait.Devnum)
		b.WriteString(": ")
	}
	b.WriteString(strings.Join(c.Wait.Queues, ", "))
	b.WriteByte(')')
	return b.String()
}
