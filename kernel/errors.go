package kernel

import "errors"

// ErrOutOfMemory is returned by AddTask when the task-memory allocator's
// bump pointer would cross the configured lower limit. There is no
// exception raised for this condition; callers must check the return.
var ErrOutOfMemory = errors.New("kernel: out of task memory")

// Debug gates kernelAssert's checks, including taskQueue.tailID's
// stale-tail assertion. Left false by default so the assertion never
// fires in a production build; a test that wants the extra check sets
// it for the duration of the test.
var Debug = false

// kernelAssert panics with msg when Debug is enabled and cond is false.
// Unknown system-call operations and other programmer-contract violations
// use this rather than a returned error: they are fatal in a debug build
// and undefined in a release build, and the kernel has no channel for
// asynchronous error reporting back to a task.
func kernelAssert(cond bool, msg string) {
	if Debug && !cond {
		panic("kernel: assertion failed: " + msg)
	}
}
