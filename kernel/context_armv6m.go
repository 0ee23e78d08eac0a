//go:build armv6m

package kernel

import "encoding/binary"

// v6-M cores can only stm/ldm their low register bank (R0-R7), so the
// original's v6-M save_context/restore_context move the eight
// callee-saved registers (R4-R11) in two four-register halves: R4-R7
// directly, then R8-R11 via a mov into a low register first. The two
// halves produce the same memory layout as the v7-M single-instruction
// form; only the instruction sequence differs on real hardware.
const halfWords = calleeSavedWords / 2

func contextSave(stack []byte, sp uint32, regs [calleeSavedWords]uint32) uint32 {
	sp -= calleeSavedWords * wordSize
	be := binary.BigEndian
	for i := 0; i < halfWords; i++ { // R4-R7
		be.PutUint32(stack[sp+uint32(i)*wordSize:], regs[i])
	}
	for i := halfWords; i < calleeSavedWords; i++ { // R8-R11, via low-register shuffle
		be.PutUint32(stack[sp+uint32(i)*wordSize:], regs[i])
	}
	return sp
}

func contextRestore(stack []byte, sp uint32) (regs [calleeSavedWords]uint32, newSP uint32) {
	be := binary.BigEndian
	for i := 0; i < halfWords; i++ {
		regs[i] = be.Uint32(stack[sp+uint32(i)*wordSize:])
	}
	for i := halfWords; i < calleeSavedWords; i++ {
		regs[i] = be.Uint32(stack[sp+uint32(i)*wordSize:])
	}
	return regs, sp + calleeSavedWords*wordSize
}
