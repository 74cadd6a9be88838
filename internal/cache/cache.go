// Package cache is a disk-backed memo of parsed directives, keyed by the
// sha256 of the text and language that produced them. It exists for
// callers that re-parse the same translation unit repeatedly (an editor
// revisiting an unchanged file, a scan subcommand rerun after a no-op
// edit) and would rather pay one disk read than a second full parse.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ouankou/roup/internal/dirkind"
	"github.com/ouankou/roup/internal/ir"
	"github.com/ouankou/roup/internal/lang"
	"github.com/ouankou/roup/internal/source"
)

// schemaVersion guards against decoding a payload written by an older,
// incompatible Payload shape; bump it whenever Payload's fields change.
const schemaVersion uint16 = 1

// Key identifies one cached parse result: the sha256 of its input text
// and host language.
type Key [sha256.Size]byte

// KeyFor computes the Key for text parsed under language l.
func KeyFor(text string, l lang.Language) Key {
	h := sha256.New()
	h.Write([]byte{byte(l)})
	h.Write([]byte(text))
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// Payload is the on-disk encoding of one parsed Directive. ir.Clause's
// fields are already all exported, so clauses round-trip through
// msgpack directly; only Directive needs reconstructing since its
// ordered/byKind fields are unexported and derived.
type Payload struct {
	Schema   uint16
	Kind     dirkind.Kind
	Language lang.Language
	Line     uint32
	Column   uint32
	Clauses  []*ir.Clause
}

func toPayload(d *ir.Directive) *Payload {
	return &Payload{
		Schema:   schemaVersion,
		Kind:     d.Kind,
		Language: d.Language,
		Line:     d.Pos.Line,
		Column:   d.Pos.Column,
		Clauses:  d.ClausesInOriginalOrder(),
	}
}

func (p *Payload) toDirective() *ir.Directive {
	pos := source.Position{Line: p.Line, Column: p.Column}
	return ir.New(p.Kind, p.Language, pos, p.Clauses)
}

// Disk is a sha256-keyed, msgpack-encoded directory cache of parsed
// directives. The zero value is not usable; construct with Open. A nil
// *Disk is valid and every method on it is a no-op, so callers can treat
// caching as optional without a separate enabled flag.
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a disk cache rooted at dir, creating it if absent.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// OpenDefault initializes a disk cache at $XDG_CACHE_HOME/roup, falling
// back to $HOME/.cache/roup.
func OpenDefault() (*Disk, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return Open(filepath.Join(base, "roup"))
}

func (c *Disk) pathFor(k Key) string {
	return filepath.Join(c.dir, "directives", hex.EncodeToString(k[:])+".mp")
}

// Put writes d's encoding under k, replacing any existing entry
// atomically via a temp file and rename.
func (c *Disk) Put(k Key, d *ir.Directive) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(k)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(toPayload(d)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads back the directive stored under k. The second return value
// is false on a cache miss (including a version mismatch, treated as a
// miss rather than an error).
func (c *Disk) Get(k Key) (*ir.Directive, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(k))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, err
	}
	if p.Schema != schemaVersion {
		return nil, false, nil
	}
	return p.toDirective(), true, nil
}

// DropAll discards every cached entry.
func (c *Disk) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "directives"))
}
