package kernel

import "testing"

func TestMutexTryAcquireSucceedsWhenUnowned(t *testing.T) {
	k := newTestKernel(1)
	m := NewMutex()
	var ok bool
	if reschedule := k.dispatchLocked(1, sysCall{op: OpTryMutex, mutex: m, outOK: &ok}); reschedule {
		t.Fatal("TRY_MUTEX must never request a reschedule")
	}
	if !ok {
		t.Fatal("TRY_MUTEX on an unowned mutex should succeed")
	}
	if m.owner != 1 {
		t.Fatalf("owner = %d, want 1", m.owner)
	}
}

func TestMutexTryAcquireFailsWhenOwned(t *testing.T) {
	k := newTestKernel(2)
	m := NewMutex()
	var ok1, ok2 bool
	k.dispatchLocked(1, sysCall{op: OpTryMutex, mutex: m, outOK: &ok1})
	if reschedule := k.dispatchLocked(2, sysCall{op: OpTryMutex, mutex: m, outOK: &ok2}); reschedule {
		t.Fatal("TRY_MUTEX must never request a reschedule, even on failure")
	}
	if ok2 {
		t.Fatal("TRY_MUTEX on an already-owned mutex should fail")
	}
	if k.tcb(2).wait {
		t.Fatal("a failed TRY_MUTEX must not queue the caller")
	}
}

func TestMutexQueueGrantsImmediatelyWhenUnowned(t *testing.T) {
	k := newTestKernel(1)
	m := NewMutex()
	if reschedule := k.dispatchLocked(1, sysCall{op: OpQueueMutex, mutex: m}); reschedule {
		t.Fatal("QUEUE_MUTEX on an unowned mutex must not request a reschedule")
	}
	if m.owner != 1 {
		t.Fatalf("owner = %d, want 1", m.owner)
	}
}

func TestMutexQueueBlocksWhenOwned(t *testing.T) {
	k := newTestKernel(2)
	m := NewMutex()
	k.dispatchLocked(1, sysCall{op: OpQueueMutex, mutex: m})
	if reschedule := k.dispatchLocked(2, sysCall{op: OpQueueMutex, mutex: m}); !reschedule {
		t.Fatal("QUEUE_MUTEX on an owned mutex must request a reschedule")
	}
	if !k.tcb(2).wait {
		t.Fatal("the blocked task must be marked waiting")
	}
}

func TestMutexUnqueueHandsOffToNextWaiterFIFO(t *testing.T) {
	k := newTestKernel(3)
	m := NewMutex()
	k.dispatchLocked(1, sysCall{op: OpQueueMutex, mutex: m})
	k.dispatchLocked(2, sysCall{op: OpQueueMutex, mutex: m})
	k.dispatchLocked(3, sysCall{op: OpQueueMutex, mutex: m})

	if reschedule := k.dispatchLocked(1, sysCall{op: OpUnqueueMutex, mutex: m}); !reschedule {
		t.Fatal("UNQUEUE_MUTEX must request a reschedule when a waiter exists")
	}
	if m.owner != 2 {
		t.Fatalf("owner after release = %d, want 2 (FIFO order)", m.owner)
	}
	if k.tcb(2).wait {
		t.Fatal("the newly-owning task must be cleared from waiting")
	}

	if reschedule := k.dispatchLocked(2, sysCall{op: OpUnqueueMutex, mutex: m}); !reschedule {
		t.Fatal("UNQUEUE_MUTEX must request a reschedule when a waiter exists")
	}
	if m.owner != 3 {
		t.Fatalf("owner after second release = %d, want 3", m.owner)
	}

	if reschedule := k.dispatchLocked(3, sysCall{op: OpUnqueueMutex, mutex: m}); reschedule {
		t.Fatal("UNQUEUE_MUTEX on an empty wait queue must not request a reschedule")
	}
	if m.owner != noTask {
		t.Fatalf("owner after final release = %d, want noTask", m.owner)
	}
}
