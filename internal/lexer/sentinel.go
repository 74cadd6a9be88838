package lexer

import (
	"strings"

	"github.com/ouankou/roup/internal/lang"
)

// stripSentinel recognizes the leading sentinel of one already
// continuation-folded physical line and returns the family it names plus
// the remainder of the line with the sentinel (and any separating
// whitespace) removed. ok is false if no recognized sentinel is present,
// the NoDirective failure mode of spec.md §4.A.
func stripSentinel(line string, l lang.Language) (fam lang.Family, rest string, ok bool) {
	if l.IsFortran() {
		return stripFortranSentinel(line)
	}
	return stripCSentinel(line)
}

// stripCSentinel accepts, in any combination: optional leading whitespace,
// optional "#pragma", then the required "omp" or "acc" keyword.
func stripCSentinel(line string) (lang.Family, string, bool) {
	s := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(s, "#") {
		s = strings.TrimLeft(s[1:], " \t")
		if !hasFoldPrefix(s, "pragma") {
			return 0, "", false
		}
		s = strings.TrimLeft(s[len("pragma"):], " \t")
	}
	if fam, rest, ok := takeFamilyWord(s); ok {
		return fam, rest, true
	}
	return 0, "", false
}

// stripFortranSentinel accepts !$omp, !$OMP, c$omp, *$omp and the acc
// equivalents, case-insensitively, at column 1 or after leading
// whitespace (free-form permits leading whitespace; fixed-form sentinels
// are expected at column 1 but we don't reject leading blanks, since the
// fixed-form column discipline is enforced by the continuation folder,
// not here).
func stripFortranSentinel(line string) (lang.Family, string, bool) {
	s := strings.TrimLeft(line, " \t")
	for _, prefix := range []string{"!$", "c$", "C$", "*$"} {
		if strings.HasPrefix(s, prefix) {
			return takeFamilyWord(s[len(prefix):])
		}
	}
	return 0, "", false
}

// takeFamilyWord matches a case-insensitive "omp" or "acc" at the start of
// s and returns the remainder, which must be empty or start with
// whitespace (so "ompx" is not mistaken for the "omp" sentinel word).
func takeFamilyWord(s string) (lang.Family, string, bool) {
	for word, fam := range map[string]lang.Family{"omp": lang.OpenMP, "acc": lang.OpenACC} {
		if hasFoldPrefix(s, word) {
			rest := s[len(word):]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return fam, strings.TrimLeft(rest, " \t"), true
			}
		}
	}
	return 0, "", false
}

func hasFoldPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// fortranContinuationSentinel reports whether s (already left-trimmed)
// begins with a free-form continuation sentinel ("!$omp&" / "!$acc&",
// case-insensitive) and returns the text following it.
func fortranContinuationSentinel(s string, fam lang.Family) (string, bool) {
	word := "omp"
	if fam == lang.OpenACC {
		word = "acc"
	}
	for _, prefix := range []string{"!$", "c$", "C$", "*$"} {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		tail := s[len(prefix):]
		if !hasFoldPrefix(tail, word) {
			continue
		}
		tail = tail[len(word):]
		if strings.HasPrefix(tail, "&") {
			return tail[1:], true
		}
	}
	return "", false
}
