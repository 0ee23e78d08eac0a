package kernel

import "sync"

// Kernel is the single, process-wide scheduler record. Every field is
// mutated only while mu is held, which stands in for "mutated only from
// exception context" on real hardware: here, every kernel entry point
// (a task's syscall, an ISR call, the tick) takes mu for the duration of
// its state mutation, so at most one goroutine is ever inspecting or
// changing kernel state at a time.
type Kernel struct {
	mu sync.Mutex

	arena kernelArena
	table []tcb // index 0 is the noTask sentinel and is never assigned a task

	ready   taskQueue
	current TaskID
	leaving TaskID

	tickCount uint32

	schedLock     uint32
	irqDisable    uint32
	pendingSwitch bool // models ICSR's PENDSVSET bit

	idle TaskID

	scb     scbRegs
	systick sysTickRegs

	arch    Arch
	trace   Trace
	started bool

	wg sync.WaitGroup
}

// tcb returns the TCB for id. id must be a live task; callers never
// pass noTask to it directly (ISR-context dispatch sites branch around
// that case explicitly).
func (k *Kernel) tcb(id TaskID) *tcb {
	return &k.table[id]
}

// pickNext implements the scheduler's only internal operation. It must
// be called with mu held.
//
//  1. If the current task's wait flag is clear, it is appended to the
//     ready queue (the idle task is never re-enqueued: it is only ever
//     selected as a last resort in step 4).
//  2. current is recorded as leaving.
//  3. current becomes dequeue(ready).
//  4. If current is now absent and an idle task is configured, it is
//     used instead; otherwise current may remain absent, which is the
//     tickless-sleep path.
func (k *Kernel) pickNext() {
	if k.current != noTask && !k.tcb(k.current).wait && k.current != k.idle {
		k.ready.enqueue(k, k.current)
	}
	k.leaving = k.current
	k.current = k.ready.dequeue(k)
	if k.current == noTask && k.idle != noTask {
		k.current = k.idle
	}
}

// requestReschedule sets the pending-scheduler bit. The actual switch
// happens later, when the caller reaches (or the kernel call wrapper
// manufactures) the next checkpoint — see exceptions.go.
func (k *Kernel) requestReschedule() {
	k.pendingSwitch = true
	k.scb.setPendSV()
}
