package kernel

// Wait arms the calling task's signal latch and blocks until some other
// task calls Signal against it. It is the WAIT operation: edge-triggered
// rendezvous semantics mean a Signal that arrives before Wait is called
// is lost — there is no count, no queue of pending signals, just the one
// latch bit.
func (t *Task) Wait() {
	t.k.svc(t.id, sysCall{op: OpWait})
}

// Signal wakes target if and only if target currently has its signal
// latch armed (i.e. is blocked in Wait, or about to become so before the
// signaller is next scheduled). It is ISR-safe: the SIGNAL operation never
// reads or writes k.current, and the interrupt-context path it runs on
// only switches tasks when no task is running (see scheduleLocked).
func (k *Kernel) Signal(target *Task) {
	k.isrCall(sysCall{op: OpSignal, target: target.id})
}

// Yield requests a reschedule without blocking: the calling task is
// appended to the ready queue (pickNext's normal behavior for a runnable
// current task) and whichever task round-robin selects next gets to run.
// It is the RESCHEDULE operation.
func (t *Task) Yield() {
	t.k.svc(t.id, sysCall{op: OpReschedule})
}
