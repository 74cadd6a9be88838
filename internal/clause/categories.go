package clause

import "github.com/ouankou/roup/internal/ir"

// defaultVariant gives the ordinary-case Variant for a ClauseKind; the
// handful of clauses needing custom parsing (reduction, schedule, map,
// depend, default, proc_bind, atomic_default_mem_order, defaultmap,
// device_type, wait) are special-cased in parser.go's build and never
// consult this table.
var defaultVariant = map[ir.ClauseKind]ir.Variant{
	ir.If:         ir.Expression,
	ir.NumThreads: ir.Expression,
	ir.Collapse:   ir.Expression,
	ir.Ordered:    ir.Expression, // bare usage stores Expr == ""
	ir.Priority:   ir.Expression,
	ir.Safelen:    ir.Expression,
	ir.Simdlen:    ir.Expression,
	ir.Device:     ir.Expression,
	ir.Final:      ir.Expression,
	ir.Hint:       ir.Expression,
	ir.Grainsize:  ir.Expression,
	ir.NumTasks:   ir.Expression,
	ir.Depobj:     ir.Expression,

	ir.Private:       ir.List,
	ir.Firstprivate:  ir.List,
	ir.Lastprivate:   ir.List,
	ir.Shared:        ir.List,
	ir.Copyin:        ir.List,
	ir.Copyprivate:   ir.List,
	ir.Linear:        ir.List,
	ir.Aligned:       ir.List,
	ir.Uniform:       ir.List,
	ir.InReduction:   ir.List,
	ir.TaskReduction: ir.List,
	ir.Allocate:      ir.List,

	ir.Nowait:        ir.Bare,
	ir.Untied:        ir.Bare,
	ir.Mergeable:     ir.Bare,
	ir.SeqCst:        ir.Bare,
	ir.AtomicRead:    ir.Bare,
	ir.AtomicWrite:   ir.Bare,
	ir.AtomicUpdate:  ir.Bare,
	ir.AtomicCapture: ir.Bare,
	ir.AcqRel:        ir.Bare,
	ir.Release:       ir.Bare,
	ir.Acquire:       ir.Bare,
	ir.Relaxed:       ir.Bare,
	ir.Nogroup:       ir.Bare,
	ir.Bind:          ir.Enum,

	ir.AccIf:     ir.Expression,
	ir.AccSelf:   ir.Expression,
	ir.AccAsync:  ir.Expression, // bare usage stores Expr == ""
	ir.AccGang:   ir.Expression,
	ir.AccWorker: ir.Expression,
	ir.AccVector: ir.Expression,
	ir.AccTile:   ir.Expression,

	ir.AccCopy:         ir.List,
	ir.AccCopyin:       ir.List,
	ir.AccCopyout:      ir.List,
	ir.AccCreate:       ir.List,
	ir.AccPresent:      ir.List,
	ir.AccDeviceptr:    ir.List,
	ir.AccNoCreate:     ir.List,
	ir.AccAttach:       ir.List,
	ir.AccDetach:       ir.List,
	ir.AccPrivate:      ir.List,
	ir.AccFirstprivate: ir.List,
	ir.AccNumGangs:     ir.Expression,
	ir.AccNumWorkers:   ir.Expression,
	ir.AccVectorLength: ir.Expression,
	ir.AccCollapse:     ir.Expression,

	ir.AccIndependent: ir.Bare,
	ir.AccAuto:        ir.Bare,
	ir.AccSeq:         ir.Bare,
	ir.AccFinalize:    ir.Bare,
	ir.AccIfPresent:   ir.Bare,
	ir.AccNohost:      ir.Bare,
}
