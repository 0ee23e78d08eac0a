package kernel

// Mutex provides mutual exclusion with a FIFO wait queue and no priority
// inheritance: the kernel's scheduling is fixed-priority round-robin to
// begin with, so there is no priority to invert. owner is noTask when the
// mutex is unlocked.
type Mutex struct {
	owner TaskID
	wait  taskQueue
}

// NewMutex returns an unlocked mutex.
func NewMutex() *Mutex {
	return &Mutex{owner: noTask}
}

// TryMutexAcquire takes ownership if the mutex is unowned and reports whether
// it succeeded. It never blocks.
func (t *Task) TryMutexAcquire(m *Mutex) bool {
	var ok bool
	t.k.svc(t.id, sysCall{op: OpTryMutex, mutex: m, outOK: &ok})
	return ok
}

// MutexAcquire blocks until the calling task owns m. If m is already unowned
// it returns immediately with ownership; otherwise the task joins m's
// FIFO wait queue and is resumed, still in arrival order, only once every
// earlier waiter has acquired and released.
func (t *Task) MutexAcquire(m *Mutex) {
	t.k.svc(t.id, sysCall{op: OpQueueMutex, mutex: m})
}

// MutexRelease hands ownership to the next queued waiter, if any, or leaves
// the mutex unowned. The caller must be the current owner; a release by
// a non-owner or a double release is, per the dispatcher's contract,
// unchecked — the same way an unbalanced unlock on real hardware simply
// corrupts the owner field rather than raising a fault.
func (t *Task) MutexRelease(m *Mutex) {
	t.k.svc(t.id, sysCall{op: OpUnqueueMutex, mutex: m})
}
