// Package kernel implements the core of a preemptive multitasking
// micro-kernel for the ARM Cortex-M family (v6-M and v7-M profiles):
// fixed-priority round-robin scheduling over cooperatively-created tasks,
// timer-driven preemption via the processor's SVC/PendSV/SysTick exceptions,
// and three synchronization primitives — binary signals, event flag groups,
// and mutexes.
//
// The package consumes from its surroundings only a memory region to carve
// task stacks from (Config.MemLow, Config.MemHigh), the three exception
// vectors it installs handlers into, and the processor's system-control and
// system-tick register blocks (modeled here as plain structs rather than
// real memory-mapped addresses, since nothing in this repository runs on
// physical silicon — see the host-execution notes in hostrt.go).
//
// Task bodies are ordinary Go functions run on real goroutines. The kernel
// owns every scheduling decision (what runs next, when a switch happens,
// who is enqueued where); the goroutine underneath a task merely supplies
// the stackful suspension/resumption point that a hosted process needs in
// place of saving and restoring raw Cortex-M registers. See hostrt.go.
package kernel
