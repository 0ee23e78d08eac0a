package kernel

// Task is a handle to a running task, passed to a task's entry function.
// All blocking and task-context-only operations hang off it because they
// need to know which task is "self" — the one piece of information a
// real SVC instruction gets for free from the processor mode it traps
// from, and which a hosted goroutine has to be handed explicitly.
type Task struct {
	id TaskID
	k  *Kernel
}

// ID returns the task's stable identity.
func (t *Task) ID() TaskID { return t.id }

// runTask is the goroutine body for every task the kernel creates. It
// waits to be handed the baton, then runs the task's entry function.
// Dynamic task destruction is out of scope, so a task function normally
// loops forever, the same way a real embedded task never returns from
// its top-level loop; an entry function that does return is handled
// below.
//
// A single buffered channel per task (tcb.wake) is the scheduling baton:
// exactly one task goroutine is ever unblocked at a time, handed off by
// the kernel's own pickNext/scheduleLocked logic in exceptions.go. The
// pattern is the same single-token-handoff one a cooperative scheduler
// built on goroutines and channels uses to make Go's own runtime
// scheduler irrelevant to the ordering decisions — only the kernel
// decides who runs next.
func (k *Kernel) runTask(id TaskID) {
	t := k.tcb(id)
	<-t.wake
	task := &Task{id: id, k: k}
	t.entry(task)

	// A task that returns is treated as permanently blocked: it is never
	// re-enqueued, so pickNext will not select it again. Something else
	// must still be runnable (the idle task, if configured) or the CPU
	// goes to sleep. Unlike a task that blocks on WAIT or an event or a
	// mutex, this goroutine is exiting for good and must never be parked
	// on its own wake channel — nothing will ever signal it again, and a
	// block here would leak the goroutine and hang Join forever. Only the
	// wake handed to whatever runs next is honored.
	k.mu.Lock()
	t.done = true
	t.wait = true
	k.requestReschedule()
	wake, _ := k.scheduleLocked(id)
	k.mu.Unlock()
	k.handoff(id, wake, false)
}
