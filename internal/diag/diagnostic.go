package diag

import (
	"fmt"

	"github.com/ouankou/roup/internal/source"
)

// Diagnostic is the concrete error value every failing entry point
// returns. It implements error so it composes with the rest of Go, and
// carries a Code so callers (and the capi status-code surface) can
// switch on the failure kind without string matching.
type Diagnostic struct {
	Code   Code
	Pos    source.Position
	Detail string // e.g. the offending clause keyword
}

func (d *Diagnostic) Error() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s", d.Code)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Detail)
}

// New builds a Diagnostic with no position information.
func New(code Code, detail string) *Diagnostic {
	return &Diagnostic{Code: code, Detail: detail}
}

// At builds a Diagnostic anchored at a source position.
func At(code Code, pos source.Position, detail string) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Detail: detail}
}

// CodeOf extracts the Code from any error produced by this module, or
// UnknownCode if err is nil or not a *Diagnostic.
func CodeOf(err error) Code {
	if err == nil {
		return UnknownCode
	}
	if d, ok := err.(*Diagnostic); ok {
		return d.Code
	}
	return UnknownCode
}
