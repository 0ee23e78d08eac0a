//go:build !armv6m

package kernel

import "encoding/binary"

// contextSave stores the eight callee-saved registers below sp in a
// single multi-register operation (v7-M's stmdb), mirroring the
// original's v7-M save_context. It returns the new stack pointer.
func contextSave(stack []byte, sp uint32, regs [calleeSavedWords]uint32) uint32 {
	sp -= calleeSavedWords * wordSize
	be := binary.BigEndian
	for i, r := range regs {
		be.PutUint32(stack[sp+uint32(i)*wordSize:], r)
	}
	return sp
}

// contextRestore loads the eight callee-saved registers at sp in a single
// multi-register operation (v7-M's ldmia) and advances sp past them.
func contextRestore(stack []byte, sp uint32) (regs [calleeSavedWords]uint32, newSP uint32) {
	be := binary.BigEndian
	for i := range regs {
		regs[i] = be.Uint32(stack[sp+uint32(i)*wordSize:])
	}
	return regs, sp + calleeSavedWords*wordSize
}
