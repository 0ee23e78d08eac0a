package kernel

import "encoding/binary"

// wordSize is the machine word size the allocator rounds stack requests
// up to.
const wordSize = 4

// frameWords is the total size, in words, of a freshly carved task's
// initial saved context: eight words for the hardware-saved exception
// frame (R0-R3, R12, LR, PC, xPSR) plus eight words for the software-saved
// callee registers (R4-R11).
const frameWords = 16

// frame layout, word-indexed from the bottom of the prepared frame (i.e.
// from the task's initial saved SP). The software frame (R4-R11) sits at
// the lower addresses, since contextRestore pops it first and advances SP
// to the hardware frame for the CPU to pop on exception return; the frame
// as a whole sits at the high end of the stack region, but that describes
// where the 16 words land within the region, not the relative order of
// the two halves.
const (
	frameSoftwareWords = 8                     // R4-R11, popped by contextRestore
	hardwareFrameStart = frameSoftwareWords     // R0-R3, R12, LR, PC, xPSR
	frameHardwarePC    = hardwareFrameStart + 6 // hardware frame's PC slot
	frameHardwarexPSR  = hardwareFrameStart + 7 // hardware frame's xPSR slot
)

// thumbBit is xPSR bit 24 (the "T" bit). Cortex-M cores fault on exception
// return if an instruction is resumed with T clear, since the architecture
// has no ARM instruction set — only Thumb.
const thumbBit = 1 << 24

// tcb is a task control block. next/wait/signal are the fields a task's
// scheduling state is built from; the remaining fields are implementation
// state needed to carve, schedule and execute the task on a host.
type tcb struct {
	next   TaskID // queue link; valid only while queued
	wait   bool   // true = not on the ready queue
	signal bool   // self-wait/signal latch

	stack []byte                    // simulated process stack, high-to-low like real hardware
	sp    uint32                    // offset into stack of the saved context
	regs  [calleeSavedWords]uint32 // callee-saved registers while parked; see switchContext

	entry func(*Task) // task body
	wake  chan struct{}
	done  bool
}

// kernelArena is a bump allocator that carves task memory downward from
// top, the same direction the original firmware's allocation pointer
// moves, and fails closed rather than ever allowing top to cross limit.
type kernelArena struct {
	top   uint32
	limit uint32
}

// create rounds size up to a word multiple, reserves stackSize+tcbBytes
// of address space, and reports the new top. It performs no actual memory
// carving itself — the allocator only accounts for the fixed region's
// capacity; the real backing storage for a task's simulated stack is a
// separate Go byte slice sized to match, created by the caller once the
// accounting succeeds. See Kernel.AddTask.
func (a *kernelArena) create(stackSize uint32, tcbBytes uint32) (addr uint32, ok bool) {
	size := roundUpWord(stackSize) + tcbBytes
	if size > a.top || a.top-size < a.limit {
		return 0, false
	}
	a.top -= size
	return a.top, true
}

func roundUpWord(n uint32) uint32 {
	return (n + wordSize - 1) &^ (wordSize - 1)
}

// tcbApproxSize is the accounted cost, in bytes, of a TCB for the purpose
// of the bump allocator's bookkeeping. Real TCB fields live in Go heap
// memory (tcb above), not in the simulated arena, but the arena still
// reserves the same footprint a firmware build would, so the allocator's
// out-of-memory arithmetic matches a real build's.
const tcbApproxSize = 4 * 4 // next, wait, signal, sp — rounded to 4 words

// buildInitialFrame writes the 16-word initial context into stack, which
// must be exactly frameWords*wordSize bytes (i.e. the task's entire
// simulated stack — this package does not model stack growth beyond the
// initial frame, since no code ever executes against these bytes; they
// exist purely so allocator/layout invariants are inspectable and
// testable). Returns the saved stack pointer, which is always 0: the
// frame occupies the full buffer from offset 0.
func buildInitialFrame(stack []byte, entryAddr uint32) uint32 {
	be := binary.BigEndian
	for i := 0; i < frameWords; i++ {
		be.PutUint32(stack[i*wordSize:], 0)
	}
	be.PutUint32(stack[frameHardwarePC*wordSize:], entryAddr)
	be.PutUint32(stack[frameHardwarexPSR*wordSize:], thumbBit)
	return 0
}
