package kernel

import "testing"

func TestDisableEnableIRQNestingCounter(t *testing.T) {
	k := New(Config{MemHigh: 1024})

	k.DisableIRQ()
	k.DisableIRQ()
	if k.irqDisable != 2 {
		t.Fatalf("irqDisable = %d, want 2 after two nested DisableIRQ calls", k.irqDisable)
	}

	k.EnableIRQ()
	if k.irqDisable != 1 {
		t.Fatalf("irqDisable = %d, want 1 after one EnableIRQ", k.irqDisable)
	}

	k.EnableIRQ()
	if k.irqDisable != 0 {
		t.Fatalf("irqDisable = %d, want 0 once every DisableIRQ has a matching EnableIRQ", k.irqDisable)
	}

	k.EnableIRQ() // unmatched call must saturate at zero, not underflow
	if k.irqDisable != 0 {
		t.Fatalf("irqDisable = %d after an unmatched EnableIRQ, want 0 (must not underflow)", k.irqDisable)
	}
}
