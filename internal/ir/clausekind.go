// Package ir is the IR model (spec.md §3, §4.D): Directive and Clause
// tagged values, their invariants, and the read-only query operations
// defined over them.
package ir

import "github.com/ouankou/roup/internal/lang"

// ClauseKind is the closed clause-kind enumeration. Like dirkind.Kind,
// OpenMP clause kinds and OpenACC clause kinds occupy disjoint ranges so
// a ClauseKind alone names both the family and the clause.
type ClauseKind uint16

const (
	ClauseUnknown ClauseKind = 0

	// --- OpenMP clauses (1-499) -----------------------------------------
	If ClauseKind = iota + 1
	NumThreads
	Collapse
	Ordered
	Priority
	Safelen
	Simdlen
	Device
	Final
	Private
	Firstprivate
	Lastprivate
	Shared
	Copyin
	Copyprivate
	Linear
	Aligned
	Uniform
	Reduction
	InReduction
	TaskReduction
	Schedule
	DefaultOmp
	ProcBind
	Map
	Depend
	DeviceType
	Bind
	AtomicDefaultMemOrder
	Defaultmap
	Nowait
	Untied
	Mergeable
	SeqCst
	AtomicRead
	AtomicWrite
	AtomicUpdate
	AtomicCapture
	AcqRel
	Release
	Acquire
	Relaxed
	Hint
	Grainsize
	NumTasks
	Allocate
	Depobj
	Nogroup

	// --- OpenACC clauses (500-999) ---------------------------------------
	AccIf ClauseKind = iota + 500
	AccSelf
	AccCopy
	AccCopyin
	AccCopyout
	AccCreate
	AccPresent
	AccDeviceptr
	AccNoCreate
	AccAttach
	AccDetach
	AccPrivate
	AccFirstprivate
	AccReduction
	AccNumGangs
	AccNumWorkers
	AccVectorLength
	AccAsync
	AccWait
	AccGang
	AccWorker
	AccVector
	AccTile
	AccCollapse
	AccIndependent
	AccAuto
	AccSeq
	AccFinalize
	AccIfPresent
	AccNohost
	AccDefault
	AccDeviceType
	AccDefaultAsync
)

// Family reports which directive language k's clauses belong to.
func (k ClauseKind) Family() lang.Family {
	if k >= 500 {
		return lang.OpenACC
	}
	return lang.OpenMP
}
