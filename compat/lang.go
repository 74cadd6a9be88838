// Package compat reconstructs the historical OpenMPDirective / OpenACCIR
// class surface (spec.md §4.H) on top of the handle registry, for callers
// migrating off the legacy ompparser/accparser APIs described in
// original_source/compat. Each façade is a thin handle wrapper; none
// caches anything that would outlive freeing the handle it wraps.
package compat

import (
	"sync/atomic"

	"github.com/ouankou/roup/internal/lang"
)

// defaultLang is the process-wide host-language mode spec.md §5 calls
// out as the second piece of necessary global mutable state, alongside
// the handle registry. It backs every façade constructor that omits an
// explicit language, the same role the legacy API's setLang played.
var defaultLang atomic.Int32

func init() {
	defaultLang.Store(int32(lang.C))
}

// SetLang sets the process-wide default host language used by ParseOpenMP
// and ParseOpenACC when called without an explicit language.
func SetLang(l lang.Language) {
	defaultLang.Store(int32(l))
}

// DefaultLang returns the current process-wide default host language.
func DefaultLang() lang.Language {
	return lang.Language(defaultLang.Load())
}

func resolveLang(override *lang.Language) lang.Language {
	if override != nil {
		return *override
	}
	return DefaultLang()
}
