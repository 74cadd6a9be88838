package dirkind

import (
	"strings"

	"github.com/ouankou/roup/internal/diag"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/lexer"
	"github.com/ouankou/roup/internal/token"
)

// node is one edge-set of the static keyword trie. terminal is Unknown
// when no directive kind ends at this node.
type node struct {
	children map[string]*node
	terminal Kind
}

func newNode() *node { return &node{children: make(map[string]*node)} }

func (n *node) insert(words []string, kind Kind) {
	cur := n
	for _, word := range words {
		key := strings.ToLower(word)
		next, ok := cur.children[key]
		if !ok {
			next = newNode()
			cur.children[key] = next
		}
		cur = next
	}
	cur.terminal = kind
}

func buildTrie(entries []entry) *node {
	root := newNode()
	for _, e := range entries {
		root.insert(e.words, e.kind)
	}
	return root
}

var (
	ompTrie = buildTrie(ompEntries)
	accTrie = buildTrie(accEntries)
)

func trieFor(fam lang.Family) *node {
	if fam == lang.OpenACC {
		return accTrie
	}
	return ompTrie
}

// Recognize consumes as many leading Ident tokens from s as the longest
// matching path through fam's trie allows, greedily descending and
// backtracking only to the deepest terminal seen when the next word has
// no matching edge (spec.md §4.B). It returns UnknownDirective if no
// trie path consumes even one keyword.
func Recognize(s *lexer.Stream, fam lang.Family) (Kind, error) {
	cur := trieFor(fam)
	best := Unknown
	bestMark := s.Mark()

	for {
		tok := s.Peek()
		if tok.Kind != token.Ident {
			break
		}
		next, ok := cur.children[strings.ToLower(tok.Text)]
		if !ok {
			break
		}
		s.Next()
		cur = next
		if cur.terminal != Unknown {
			best = cur.terminal
			bestMark = s.Mark()
		}
	}

	if best == Unknown {
		return Unknown, diag.New(diag.UnknownDirective, "")
	}
	s.Reset(bestMark)
	return best, nil
}
