package kernel

// scbRegs models the subset of the Cortex-M system-control block this
// kernel touches: ICSR (exception set-pending bits), SCR (sleep-on-exit),
// and SHPR3 (priority bytes for PendSV and SysTick). Bit positions follow
// the architecture reference manual and are named rather than abstracted
// away, as a real driver would.
type scbRegs struct {
	icsr  uint32
	scr   uint32
	shpr3 uint32
}

const (
	// icsrPendSVSet is ICSR bit 28 (PENDSVSET) — writing 1 pends PendSV.
	icsrPendSVSet uint32 = 1 << 28
	// scrSleepOnExit is SCR bit 1 (SLEEPONEXIT).
	scrSleepOnExit uint32 = 1 << 1
	// shpr3 priority fields: PendSV occupies bits 23:16, SysTick 31:24.
	// Both are programmed to the lowest priority an implementation
	// supports (all bits set) so neither can preempt any other handler
	// and so they tie with each other.
	shpr3PendSVShift  = 16
	shpr3SysTickShift = 24
	lowestPriority    = 0xFF
)

func (s *scbRegs) setPendSV() {
	s.icsr |= icsrPendSVSet
}

func (s *scbRegs) clearPendSV() {
	s.icsr &^= icsrPendSVSet
}

func (s *scbRegs) pendSVPending() bool {
	return s.icsr&icsrPendSVSet != 0
}

func (s *scbRegs) setLowestPriorities() {
	s.shpr3 = lowestPriority<<shpr3PendSVShift | lowestPriority<<shpr3SysTickShift
}

// sysTickRegs models SysTick's CSR (control/status), RVR (reload value)
// and CVR (current value) registers.
type sysTickRegs struct {
	csr uint32
	rvr uint32
	cvr uint32
}

const (
	csrEnable    uint32 = 1 << 0 // ENABLE
	csrTickInt   uint32 = 1 << 1 // TICKINT
	csrClkSource uint32 = 1 << 2 // CLKSOURCE: processor clock, not reference
)

func (s *sysTickRegs) configure(reload uint32) {
	s.rvr = reload
	s.cvr = 0
	s.csr = csrTickInt | csrClkSource // configured, left disabled
}

func (s *sysTickRegs) enable() {
	s.csr |= csrEnable
}

func (s *sysTickRegs) disable() {
	s.csr &^= csrEnable
}

func (s *sysTickRegs) enabled() bool {
	return s.csr&csrEnable != 0
}
