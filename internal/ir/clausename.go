package ir

import "github.com/ouankou/roup/internal/lang"

// canonicalSpelling maps each ClauseKind to the lowercase keyword the
// renderer emits and the parser's alias table ultimately resolves to.
var canonicalSpelling = map[ClauseKind]string{
	If:                    "if",
	NumThreads:            "num_threads",
	Collapse:              "collapse",
	Ordered:               "ordered",
	Priority:              "priority",
	Safelen:               "safelen",
	Simdlen:               "simdlen",
	Device:                "device",
	Final:                 "final",
	Private:               "private",
	Firstprivate:          "firstprivate",
	Lastprivate:           "lastprivate",
	Shared:                "shared",
	Copyin:                "copyin",
	Copyprivate:           "copyprivate",
	Linear:                "linear",
	Aligned:               "aligned",
	Uniform:               "uniform",
	Reduction:             "reduction",
	InReduction:           "in_reduction",
	TaskReduction:         "task_reduction",
	Schedule:              "schedule",
	DefaultOmp:            "default",
	ProcBind:              "proc_bind",
	Map:                   "map",
	Depend:                "depend",
	DeviceType:            "device_type",
	Bind:                  "bind",
	AtomicDefaultMemOrder: "atomic_default_mem_order",
	Defaultmap:            "defaultmap",
	Nowait:                "nowait",
	Untied:                "untied",
	Mergeable:             "mergeable",
	SeqCst:                "seq_cst",
	AtomicRead:            "read",
	AtomicWrite:           "write",
	AtomicUpdate:          "update",
	AtomicCapture:         "capture",
	AcqRel:                "acq_rel",
	Release:               "release",
	Acquire:               "acquire",
	Relaxed:               "relaxed",
	Hint:                  "hint",
	Grainsize:             "grainsize",
	NumTasks:              "num_tasks",
	Allocate:              "allocate",
	Depobj:                "depobj",
	Nogroup:               "nogroup",

	AccIf:           "if",
	AccSelf:         "self",
	AccCopy:         "copy",
	AccCopyin:       "copyin",
	AccCopyout:      "copyout",
	AccCreate:       "create",
	AccPresent:      "present",
	AccDeviceptr:    "deviceptr",
	AccNoCreate:     "no_create",
	AccAttach:       "attach",
	AccDetach:       "detach",
	AccPrivate:      "private",
	AccFirstprivate: "firstprivate",
	AccReduction:    "reduction",
	AccNumGangs:     "num_gangs",
	AccNumWorkers:   "num_workers",
	AccVectorLength: "vector_length",
	AccAsync:        "async",
	AccWait:         "wait",
	AccGang:         "gang",
	AccWorker:       "worker",
	AccVector:       "vector",
	AccTile:         "tile",
	AccCollapse:     "collapse",
	AccIndependent:  "independent",
	AccAuto:         "auto",
	AccSeq:          "seq",
	AccFinalize:     "finalize",
	AccIfPresent:    "if_present",
	AccNohost:       "nohost",
	AccDefault:      "default",
	AccDeviceType:   "device_type",
	AccDefaultAsync: "default_async",
}

func (k ClauseKind) String() string {
	if s, ok := canonicalSpelling[k]; ok {
		return s
	}
	return "unknown"
}

// aliasTable maps (family, surface spelling) to the canonical ClauseKind,
// normalizing the clause aliases spec.md §3 calls out by name. The
// original spelling is never retained, per that invariant.
var aliasTable = map[lang.Family]map[string]ClauseKind{
	lang.OpenACC: {
		"pcopy":             AccCopy,
		"present_or_copy":   AccCopy,
		"pcopyin":           AccCopyin,
		"present_or_copyin": AccCopyin,
		"pcopyout":          AccCopyout,
		"present_or_copyout": AccCopyout,
		"pcreate":           AccCreate,
		"present_or_create": AccCreate,
		"dtype":             AccDeviceType,
	},
	lang.OpenMP: {
		"dtype": DeviceType,
	},
}

// surfaceTable maps (family, surface spelling) to its canonical
// ClauseKind for every clause the family recognizes, built from
// canonicalSpelling plus aliasTable. It is the table internal/clause
// dispatches clause keywords against.
func surfaceTable(fam lang.Family) map[string]ClauseKind {
	out := make(map[string]ClauseKind)
	for k, name := range canonicalSpelling {
		if k.Family() != fam {
			continue
		}
		out[name] = k
	}
	for alias, k := range aliasTable[fam] {
		out[alias] = k
	}
	return out
}

// SurfaceTable is the exported form used by internal/clause.
func SurfaceTable(fam lang.Family) map[string]ClauseKind {
	return surfaceTable(fam)
}
