package render

import "github.com/ouankou/roup/internal/lang"

// sentinelPrefix is the inverse of internal/lexer's sentinel stripping:
// the exact prefix (including trailing separator) Render emits before the
// directive keywords.
func sentinelPrefix(l lang.Language, fam lang.Family) string {
	word := "omp"
	if fam == lang.OpenACC {
		word = "acc"
	}
	switch l {
	case lang.FortranFree:
		return "!$" + word + " "
	case lang.FortranFixed:
		return "c$" + word + " "
	default:
		return "#pragma " + word + " "
	}
}
