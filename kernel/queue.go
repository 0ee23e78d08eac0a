package kernel

// taskQueue is an intrusive singly-linked FIFO of tasks. It owns no
// storage of its own: the "next" link for every task lives in that task's
// slot in the kernel's TCB arena, so a taskQueue value is just a pair of
// TaskIDs. A task is a member of at most one queue at a time.
type taskQueue struct {
	head TaskID
	tail TaskID
}

// enqueue appends id at the tail. If the queue was empty, head and tail
// both become id; otherwise the old tail's next link is chained to id. The
// enqueued task's own next link is always cleared.
func (q *taskQueue) enqueue(k *Kernel, id TaskID) {
	t := k.tcb(id)
	t.next = noTask
	if q.head == noTask {
		q.head = id
		q.tail = id
		return
	}
	k.tcb(q.tailID()).next = id
	q.tail = id
}

// tailID returns the current tail, asserting in Debug builds that the
// queue is non-empty first. tail is left stale once the queue has
// drained; reading it while head is noTask would chain onto a task that
// is no longer a member of this queue.
func (q *taskQueue) tailID() TaskID {
	kernelAssert(q.head != noTask, "taskQueue: tail read while empty")
	return q.tail
}

// dequeue removes and returns the head, or noTask if the queue is empty.
// When the queue becomes empty, only head is cleared — tail is left
// stale by design. Callers must never chain onto tail while head is
// noTask; enqueue's tail read goes through tailID, which asserts it in
// Debug builds. Snapshot copies the raw tail field as is, stale or not.
func (q *taskQueue) dequeue(k *Kernel) TaskID {
	id := q.head
	if id == noTask {
		return noTask
	}
	q.head = k.tcb(id).next
	return id
}

// empty reports whether the queue currently has no member. It is the only
// sanctioned way to reason about an empty queue; nothing in this package
// reads tail to answer the same question.
func (q *taskQueue) empty() bool {
	return q.head == noTask
}
