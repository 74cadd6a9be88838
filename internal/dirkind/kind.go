// Package dirkind is the directive-kind recognizer (spec.md §4.B): a
// longest-match lookup over a static trie of reserved keyword sequences
// that turns the token stream following a directive sentinel into one
// closed Kind tag plus the remaining tokens.
package dirkind

import "github.com/ouankou/roup/internal/lang"

// Kind is the closed directive-kind enumeration. Combined directives
// (e.g. "target teams distribute parallel for simd") are first-class
// values, never decomposed, per spec.md §9's resolved Open Question.
// OpenMP kinds occupy 1-999; OpenACC kinds occupy 1000-1999, so a Kind
// alone — without a separate family tag — identifies both the family and
// the directive.
type Kind uint16

const (
	Unknown Kind = 0

	// --- OpenMP (1-999) -------------------------------------------------
	Parallel Kind = iota + 100
	ParallelFor
	ParallelForSimd
	For
	ForSimd
	Simd
	Sections
	Section
	Single
	Master
	Masked
	Critical
	Barrier
	Taskwait
	Taskyield
	Task
	Taskgroup
	Taskloop
	TaskloopSimd
	Flush
	Ordered
	Atomic
	Threadprivate
	Target
	TargetData
	TargetEnterData
	TargetExitData
	TargetUpdate
	TargetTeams
	TargetTeamsDistribute
	TargetTeamsDistributeSimd
	TargetTeamsDistributeParallelFor
	TargetTeamsDistributeParallelForSimd
	TargetParallel
	TargetParallelFor
	TargetParallelForSimd
	TargetSimd
	Teams
	TeamsDistribute
	TeamsDistributeSimd
	TeamsDistributeParallelFor
	TeamsDistributeParallelForSimd
	Distribute
	DistributeSimd
	DistributeParallelFor
	DistributeParallelForSimd
	Declare
	DeclareSimd
	DeclareReduction
	DeclareMapper
	DeclareTarget
	DeclareVariant
	BeginDeclareTarget
	EndDeclareTarget
	BeginDeclareVariant
	EndDeclareVariant
	EnterData
	ExitData
	Cancel
	CancellationPoint
	Depobj
	Requires
	Metadirective
	Nothing
	Error
	Allocate
	Allocators
	Dispatch
	Scan
	Loop
	ParallelMasked
	ParallelMaster
	MasterTaskloop
	MaskedTaskloop
	ParallelSections
	Workshare
	ParallelWorkshare
	Interop

	// --- OpenACC (1000-1999) ---------------------------------------------
	AccParallel Kind = iota + 1000
	AccKernels
	AccSerial
	AccData
	AccEnterData
	AccExitData
	AccHostData
	AccLoop
	AccParallelLoop
	AccKernelsLoop
	AccSerialLoop
	AccAtomic
	AccDeclare
	AccRoutine
	AccCache
	AccUpdate
	AccWait
	AccInit
	AccShutdown
	AccSet
	AccEndParallel
	AccEndKernels
	AccEndSerial
	AccEndData
	AccEndHostData
)

// Family reports which directive language k belongs to.
func (k Kind) Family() lang.Family {
	if k >= 1000 {
		return lang.OpenACC
	}
	return lang.OpenMP
}
