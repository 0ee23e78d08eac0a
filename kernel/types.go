package kernel

// TaskID identifies a task by its stable index into the kernel's task
// arena. Tasks are never relocated or freed once created, so a TaskID
// remains valid for the lifetime of the program. The zero value means
// "no task".
type TaskID uint32

const noTask TaskID = 0

// Op identifies a system-call dispatcher operation.
type Op uint8

const (
	OpWait Op = iota
	OpSignal
	OpReschedule
	OpSignalEvent
	OpWaitEvent
	OpResumeEvent
	OpQueueMutex
	OpUnqueueMutex
	OpTryMutex
)

// String names an Op for diagnostics.
func (o Op) String() string {
	switch o {
	case OpWait:
		return "WAIT"
	case OpSignal:
		return "SIGNAL"
	case OpReschedule:
		return "RESCHEDULE"
	case OpSignalEvent:
		return "SIGNAL_EVENT"
	case OpWaitEvent:
		return "WAIT_EVENT"
	case OpResumeEvent:
		return "RESUME_EVENT"
	case OpQueueMutex:
		return "QUEUE_MUTEX"
	case OpUnqueueMutex:
		return "UNQUEUE_MUTEX"
	case OpTryMutex:
		return "TRY_MUTEX"
	default:
		return "unknown"
	}
}

// Arch selects the context save/restore trampoline compiled into the
// binary. The choice is a build-time concern on real hardware (two
// mutually exclusive assembly blocks); Config.Arch only labels which of
// the two Go models in context_armv6m.go / context_armv7m.go this build
// was compiled with, for diagnostics.
type Arch uint8

const (
	// ArchV7M is the default build (Cortex-M3/M4/M7): a single
	// load/store-multiple of all eight callee-saved registers.
	ArchV7M Arch = iota
	// ArchV6M (Cortex-M0/M0+/M1): the same eight registers, moved in two
	// four-register halves because only R0-R7 are stm/ldm-addressable.
	ArchV6M
)

func (a Arch) String() string {
	if a == ArchV6M {
		return "armv6m"
	}
	return "armv7m"
}

// Config parametrizes a Kernel. MemLow and MemHigh delimit the region the
// task-memory allocator carves TCBs and stacks from; the allocator treats
// them as abstract byte offsets, not real addresses, since this package
// never runs against physical memory.
type Config struct {
	MemLow  uint32
	MemHigh uint32

	// TickReload is the SysTick RVR reload value programmed at Init time.
	// The counter is configured but left disabled (CSR.ENABLE=0) until
	// Start runs.
	TickReload uint32

	// WithIdle, if true, creates a default idle task that yields forever,
	// so a Kernel with no explicit idle task still has deterministic,
	// testable sleep behavior.
	WithIdle bool

	// Arch labels which context save/restore model this binary was built
	// with. It does not select between context_armv6m.go and
	// context_armv7m.go — that choice is made at compile time by the
	// armv6m build tag — it only records the label for diagnostics and
	// for the host harness to report, so it should match the build tag
	// actually in effect.
	Arch Arch

	// Trace receives diagnostic callbacks (task creation, task switches,
	// halts). Nil disables tracing. The kernel itself never logs; see
	// trace.go.
	Trace Trace
}
