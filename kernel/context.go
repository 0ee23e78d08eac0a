package kernel

// calleeSavedWords is the size, in words, of the software-saved register
// frame (R4-R11) that contextSave/contextRestore move to and from a
// task's simulated stack. The hardware-saved frame (R0-R3, R12, LR, PC,
// xPSR) sits above it and is never touched by these routines.
const calleeSavedWords = 8

// contextSave and contextRestore are the only two routines in this
// package that know the processor's saved-register encoding. Both are
// implemented per build-tagged file (context_armv6m.go, context_armv7m.go)
// since the v6-M profile can only stm/ldm its low registers (R0-R7) and
// must move R8-R11 in a second step, while v7-M moves all eight in one
// operation. Both variants produce byte-identical results; the split
// exists to mirror the two mutually exclusive assembly blocks a real
// build would compile, one per architecture profile.
//
// sp is an offset into stack (not a real address); both routines treat
// the stack slice as growing downward from its end, matching a Cortex-M
// process stack.
