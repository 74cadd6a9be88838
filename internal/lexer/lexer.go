package lexer

import (
	"fortio.org/safecast"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/token"
)

// posOf narrows a byte offset to the uint32 token.Token.Pos carries. A
// single logical line never approaches 4GiB, but safecast keeps the
// narrowing honest rather than a bare conversion.
func posOf(offset int) uint32 {
	p, err := safecast.Conv[uint32](offset)
	if err != nil {
		return 0
	}
	return p
}

// Tokenize scans text (the directive body already stripped of its
// sentinel and continuation-folded by Preprocess) into a flat token
// stream. Whitespace is delimiting and otherwise discarded; a
// parenthesized run is matched and yielded whole as a single ParenBody
// token bearing the inner slice, per spec.md §4.A.
func Tokenize(text string) ([]token.Token, error) {
	c := newCursor(text)
	var out []token.Token
	for {
		c.skipSpace()
		if c.eof() {
			out = append(out, token.Token{Kind: token.EOF, Pos: posOf(c.off)})
			return out, nil
		}
		tok, err := scanOne(&c)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
}

func scanOne(c *cursor) (token.Token, error) {
	start := c.off
	ch := c.peek()
	switch {
	case isIdentStart(ch):
		return scanIdent(c, start), nil
	case isDigit(ch):
		return scanInt(c, start), nil
	case ch == '(':
		return scanParenBody(c, start)
	default:
		return scanPunct(c, start)
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func scanIdent(c *cursor, start int) token.Token {
	for !c.eof() && isIdentCont(c.peek()) {
		c.off++
	}
	return token.Token{Kind: token.Ident, Text: c.src[start:c.off], Pos: posOf(start)}
}

func scanInt(c *cursor, start int) token.Token {
	for !c.eof() && isDigit(c.peek()) {
		c.off++
	}
	return token.Token{Kind: token.Int, Text: c.src[start:c.off], Pos: posOf(start)}
}

// scanParenBody matches a balanced '(' ... ')' run and yields the inner
// slice (outer parens excluded, outer whitespace trimmed) as one token.
// Unbalanced parens are the LexError failure mode of spec.md §4.A.
func scanParenBody(c *cursor, start int) (token.Token, error) {
	c.off++ // consume '('
	depth := 1
	innerStart := c.off
	for {
		if c.eof() {
			return token.Token{}, diag.New(diag.LexError, "unbalanced parentheses")
		}
		switch c.advance() {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				inner := trimSpace(c.src[innerStart : c.off-1])
				return token.Token{Kind: token.ParenBody, Text: inner, Pos: posOf(start)}, nil
			}
		}
	}
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}

func scanPunct(c *cursor, start int) (token.Token, error) {
	two := func(k token.Kind) (token.Token, error) {
		c.off += 2
		return token.Token{Kind: k, Text: c.src[start:c.off], Pos: posOf(start)}, nil
	}
	one := func(k token.Kind) (token.Token, error) {
		c.off++
		return token.Token{Kind: k, Text: c.src[start:c.off], Pos: posOf(start)}, nil
	}

	ch := c.peek()
	next := c.peekAt(1)
	switch ch {
	case ')':
		return one(token.RParen)
	case ',':
		return one(token.Comma)
	case ':':
		return one(token.Colon)
	case '*':
		return one(token.Star)
	case '+':
		return one(token.Plus)
	case '-':
		return one(token.Minus)
	case '^':
		return one(token.Caret)
	case '/':
		return one(token.Slash)
	case '&':
		if next == '&' {
			return two(token.AmpAmp)
		}
		return one(token.Amp)
	case '|':
		if next == '|' {
			return two(token.PipePipe)
		}
		return one(token.Pipe)
	case '<':
		if next == '=' {
			return two(token.Le)
		}
		return one(token.Lt)
	case '>':
		if next == '=' {
			return two(token.Ge)
		}
		return one(token.Gt)
	case '=':
		if next == '=' {
			return two(token.EqEq)
		}
		return one(token.Eq)
	case '!':
		if next == '=' {
			return two(token.NotEq)
		}
	}
	c.off++
	return token.Token{Kind: token.Invalid, Text: c.src[start:c.off], Pos: posOf(start)}, nil
}
