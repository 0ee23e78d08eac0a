package kernel

// Event is a flag group: a bitmask of at most 32 flags plus a FIFO of
// tasks blocked waiting for any flag to become set. There is no
// per-flag identity beyond the bit position — producers OR bits in,
// the single waiter's EventWait drains and clears the whole mask
// atomically with respect to further EventSignal calls.
type Event struct {
	flags uint32
	wait  taskQueue
}

// NewEvent returns a zero-valued event: no flags set, no waiters.
func NewEvent() *Event {
	return &Event{}
}

// EventSignal ORs 1<<flagIndex into the event's flag set and, if a task is
// waiting, wakes exactly one of them (FIFO order if more than one is
// queued — though with a single flag set shared by all waiters, only
// the first actually needs the wakeup; the rest would simply find the
// flags already set on whatever later occasion reschedules them).
// flagIndex must be below 32; the behavior for a larger index is
// undefined.
//
// EventSignal is ISR-safe: the SIGNAL_EVENT operation never touches
// k.current, and the interrupt-context path it runs on only switches
// tasks when no task is running (see scheduleLocked).
func (k *Kernel) EventSignal(e *Event, flagIndex uint) {
	k.isrCall(sysCall{op: OpSignalEvent, event: e, flagIndex: flagIndex})
}

// EventWait blocks the calling task until at least one flag is set on e, then
// atomically reads and clears the flag set and returns it. This is the
// public, single-call surface over the two internal operations
// WAIT_EVENT and RESUME_EVENT: WAIT_EVENT either finds flags already
// present (no block) or queues the task and requests a reschedule;
// RESUME_EVENT — issued here immediately once the task is scheduled
// again — does the atomic read-and-clear. The split exists so that, on
// real hardware, any code the task runs between the two calls still
// observes the flags that woke it; there is no such intervening code on
// this path, so the two calls run back to back.
func (t *Task) EventWait(e *Event) uint32 {
	t.k.svc(t.id, sysCall{op: OpWaitEvent, event: e})
	var flags uint32
	t.k.svc(t.id, sysCall{op: OpResumeEvent, event: e, outFlags: &flags})
	return flags
}

// EventReset clears the event's flag set without waking anyone. It is
// not one of the dispatcher's nine tagged operations — it carries no
// ISR-safety requirement and is never invoked concurrently with a
// dispatch call — so it mutates directly rather than through a syscall.
func (k *Kernel) EventReset(e *Event) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.flags = 0
}

// EventPending reports the event's current flag set without clearing it.
func (k *Kernel) EventPending(e *Event) uint32 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return e.flags
}
