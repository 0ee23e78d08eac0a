package kernel

// Trace receives diagnostic events from the kernel. The kernel package
// never logs on its own — an exception handler that blocks on I/O defeats
// the purpose of an RTOS core — so by default Config.Trace is nil and every
// call below is a no-op. The host harness (cmd/ksim) installs a
// logrus-backed implementation; see internal/scenario.
type Trace interface {
	TaskCreated(id TaskID, stackSize uint32)
	TaskSwitch(from, to TaskID)
	Halt(reason string)
}

// noopTrace implements Trace with no side effects.
type noopTrace struct{}

func (noopTrace) TaskCreated(TaskID, uint32) {}
func (noopTrace) TaskSwitch(TaskID, TaskID)  {}
func (noopTrace) Halt(string)                {}

func traceOf(t Trace) Trace {
	if t == nil {
		return noopTrace{}
	}
	return t
}
