// Package lang holds the two small closed enumerations shared by every
// other package in this module: which host language a directive's surface
// syntax is written in, and which directive family (OpenMP or OpenACC) a
// sentinel belongs to.
package lang

// Language is the host-language tag carried by every Directive
// (spec.md §3).
type Language uint8

const (
	// C is plain C.
	C Language = iota
	// CXX is C++. The lexer and renderer treat C and CXX identically;
	// the tag is preserved only because callers distinguish them.
	CXX
	// FortranFree is Fortran free-form source.
	FortranFree
	// FortranFixed is Fortran fixed-form source.
	FortranFixed
)

func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case CXX:
		return "c++"
	case FortranFree:
		return "fortran-free"
	case FortranFixed:
		return "fortran-fixed"
	default:
		return "unknown"
	}
}

// IsFortran reports whether l is either Fortran surface syntax.
func (l Language) IsFortran() bool {
	return l == FortranFree || l == FortranFixed
}

// Family distinguishes the OpenMP and OpenACC directive languages. They
// share a lexer and clause-engine shape but have disjoint directive-kind
// and clause-kind enumerations.
type Family uint8

const (
	// OpenMP is the OpenMP directive family.
	OpenMP Family = iota
	// OpenACC is the OpenACC directive family.
	OpenACC
)

func (f Family) String() string {
	if f == OpenACC {
		return "acc"
	}
	return "omp"
}
