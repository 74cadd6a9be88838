package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/lang"
)

// Preprocess validates encoding, folds continuations per l's rules, and
// strips the sentinel, returning the remaining directive text (everything
// after the directive-family keyword) and the family the sentinel named.
// This is spec.md §4.A's "token source" responsibility minus
// tokenization itself, which Tokenize performs.
func Preprocess(raw string, l lang.Language) (text string, fam lang.Family, err error) {
	if !utf8.ValidString(raw) {
		return "", 0, diag.New(diag.InvalidEncoding, "")
	}
	joined, err := foldContinuations(raw, l)
	if err != nil {
		return "", 0, err
	}
	fam, rest, ok := stripSentinel(joined, l)
	if !ok {
		return "", 0, diag.New(diag.NoDirective, "")
	}
	return rest, fam, nil
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

// SplitLogicalLines groups the physical lines of raw into per-directive
// chunks under l's continuation rule, without folding or sentinel
// detection. Each returned chunk is the verbatim, still-unfolded text of
// one continuation group and is a valid Preprocess input on its own. It
// is the grouping step ParseAll needs to hand multi-physical-line
// directives to Parse one at a time.
func SplitLogicalLines(raw string, l lang.Language) []string {
	lines := splitLines(raw)
	var groups []string
	i := 0
	for i < len(lines) {
		var group []string
		switch l {
		case lang.FortranFree:
			group, i = groupFortranFree(lines, i)
		case lang.FortranFixed:
			group, i = groupFortranFixed(lines, i)
		default:
			group, i = groupBackslash(lines, i)
		}
		groups = append(groups, strings.Join(group, "\n"))
	}
	return groups
}

func groupBackslash(lines []string, i int) ([]string, int) {
	group := []string{lines[i]}
	for strings.HasSuffix(strings.TrimRight(lines[i], " \t"), "\\") && i+1 < len(lines) {
		i++
		group = append(group, lines[i])
	}
	return group, i + 1
}

func groupFortranFree(lines []string, i int) ([]string, int) {
	group := []string{lines[i]}
	fam, _, ok := stripSentinel(lines[i], lang.FortranFree)
	if !ok {
		return group, i + 1
	}
	for i+1 < len(lines) {
		if !strings.HasSuffix(strings.TrimRight(lines[i], " \t"), "&") {
			break
		}
		trimmedNext := strings.TrimLeft(lines[i+1], " \t")
		if _, ok := fortranContinuationSentinel(trimmedNext, fam); !ok {
			break
		}
		i++
		group = append(group, lines[i])
	}
	return group, i + 1
}

func groupFortranFixed(lines []string, i int) ([]string, int) {
	group := []string{lines[i]}
	for i+1 < len(lines) {
		next := lines[i+1]
		if len(next) < 6 {
			break
		}
		col6 := next[5]
		if col6 == ' ' || col6 == '0' {
			break
		}
		i++
		group = append(group, next)
	}
	return group, i + 1
}

func foldContinuations(raw string, l lang.Language) (string, error) {
	switch l {
	case lang.FortranFree:
		return foldFortranFree(raw)
	case lang.FortranFixed:
		return foldFortranFixed(raw)
	default:
		return foldBackslash(raw), nil
	}
}

// foldBackslash deletes every backslash immediately followed by a newline
// and concatenates the following physical line directly, the C/C++ rule.
func foldBackslash(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var b strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '\n' {
			i += 2
			continue
		}
		if raw[i] == '\n' {
			// A bare newline with no continuing backslash ends the
			// logical line; anything after it belongs to a different
			// directive and is ignored.
			return b.String()
		}
		b.WriteByte(raw[i])
		i++
	}
	return b.String()
}

// foldFortranFree joins a line ending in trailing '&' with a following
// "!$omp&"/"!$acc&" continuation line, per spec.md §4.A.
func foldFortranFree(raw string) (string, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return "", nil
	}

	first := lines[0]
	fam, _, ok := stripSentinel(first, lang.FortranFree)
	if !ok {
		// No sentinel on the first line; let Preprocess report
		// NoDirective uniformly rather than duplicating the check here.
		return first, nil
	}

	var b strings.Builder
	b.WriteString(first)
	for _, next := range lines[1:] {
		accumulated := strings.TrimRight(b.String(), " \t")
		if !strings.HasSuffix(accumulated, "&") {
			break
		}
		trimmedNext := strings.TrimLeft(next, " \t")
		cont, ok := fortranContinuationSentinel(trimmedNext, fam)
		if !ok {
			break
		}
		b.Reset()
		b.WriteString(strings.TrimRight(accumulated, "&"))
		b.WriteString(cont)
	}
	return b.String(), nil
}

// foldFortranFixed joins fixed-form continuation lines: column 6
// (0-indexed 5) containing a non-blank, non-zero character marks a line
// as continuing the previous one; directive text starts at column 7
// (0-indexed 6) on every line, continuation or not.
func foldFortranFixed(raw string) (string, error) {
	lines := splitLines(raw)
	var b strings.Builder
	for idx, line := range lines {
		if len(line) < 6 {
			if idx == 0 {
				b.WriteString(line)
			}
			continue
		}
		col6 := line[5]
		body := line[6:]
		isContinuation := col6 != ' ' && col6 != '0'
		if idx == 0 {
			b.WriteString(line[:6])
			b.WriteString(body)
			continue
		}
		if !isContinuation {
			break
		}
		b.WriteString(body)
	}
	return b.String(), nil
}
