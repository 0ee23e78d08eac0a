package kernel

import "testing"

func TestContextSaveRestoreRoundTrip(t *testing.T) {
	stack := make([]byte, 64)
	sp := uint32(64)

	regs := [calleeSavedWords]uint32{4, 5, 6, 7, 8, 9, 10, 11}
	sp = contextSave(stack, sp, regs)

	if sp != 64-calleeSavedWords*wordSize {
		t.Fatalf("sp after save = %d, want %d", sp, 64-calleeSavedWords*wordSize)
	}

	got, newSP := contextRestore(stack, sp)
	if newSP != 64 {
		t.Fatalf("sp after restore = %d, want 64", newSP)
	}
	if got != regs {
		t.Fatalf("restored regs = %v, want %v", got, regs)
	}
}
