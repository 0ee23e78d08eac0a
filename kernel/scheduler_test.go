package kernel

import "testing"

// TestPickNextRoundRobinFairness covers invariant 2 from the
// testable-properties list: N cooperatively-yielding tasks receive turns
// in strict rotation. pickNext is driven directly since it is the single
// place rotation order is decided; the task-context svc/scheduleLocked
// path exercises the same function, so this is equivalent to driving it
// through real goroutines without the timing nondeterminism.
func TestPickNextRoundRobinFairness(t *testing.T) {
	const n = 4
	k := newTestKernel(n)
	for i := TaskID(1); i <= n; i++ {
		k.ready.enqueue(k, i)
	}
	k.current = k.ready.dequeue(k)
	k.tcb(k.current).wait = false

	var order []TaskID
	order = append(order, k.current)
	for i := 0; i < n*3; i++ {
		k.pickNext()
		order = append(order, k.current)
	}

	for i, id := range order {
		want := TaskID(i%n) + 1
		if id != want {
			t.Fatalf("order[%d] = %d, want %d (full order: %v)", i, id, want, order)
		}
	}
}

// TestPickNextSkipsIdleFromReadyRotation covers the idle-task carve-out:
// DefaultIdle never gets re-enqueued onto ready, so it only ever turns up
// as the fallback when nothing else is runnable.
func TestPickNextSkipsIdleFromReadyRotation(t *testing.T) {
	k := newTestKernel(2)
	k.idle = 2
	k.current = 1
	k.tcb(1).wait = true // task 1 just blocked; nothing else is ready

	k.pickNext()
	if k.current != k.idle {
		t.Fatalf("current = %d, want idle task %d when nothing else is ready", k.current, k.idle)
	}
	if !k.ready.empty() {
		t.Fatal("idle must never be pushed onto the ready queue by pickNext")
	}

	// Once task 1 becomes runnable again, pickNext must step away from
	// idle without ever having enqueued idle onto ready.
	k.tcb(1).wait = false
	k.ready.enqueue(k, 1)
	k.current = k.idle
	k.pickNext()
	if k.current != 1 {
		t.Fatalf("current = %d, want 1 once it is ready again", k.current)
	}
	if !k.ready.empty() {
		t.Fatal("idle must never be pushed onto the ready queue by pickNext")
	}
}
