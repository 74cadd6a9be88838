// Package clause is the clause parsing engine (spec.md §4.C): given the
// token stream remaining after the directive keywords, it dispatches each
// clause keyword to a per-kind builder, normalizes aliases, and preserves
// original order.
package clause

import "strings"

// splitTopLevel splits body on commas at paren-nesting depth zero, the
// rule spec.md §4.C gives for list clauses.
func splitTopLevel(body string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(body[start:]))
	return out
}

// splitModifier looks for a top-level ':' in body and, if present,
// returns the comma-separated modifier keywords before it (trimmed,
// lowercased) and the remainder after it. If no top-level ':' is found,
// ok is false and rest is body unchanged.
func splitModifier(body string) (modifiers []string, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				head := body[:i]
				for _, m := range strings.Split(head, ",") {
					m = strings.ToLower(strings.TrimSpace(m))
					if m != "" {
						modifiers = append(modifiers, m)
					}
				}
				return modifiers, strings.TrimSpace(body[i+1:]), true
			}
		}
	}
	return nil, body, false
}
