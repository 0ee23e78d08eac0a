package kernel

import "testing"

func TestSignalBeforeWaitIsLost(t *testing.T) {
	// SIGNAL checks target.signal == 1 before clearing it. A signal that arrives before
	// the target has called Wait finds signal == 0 and is silently
	// dropped — rendezvous semantics, not a counting semaphore.
	k := newTestKernel(1)
	const target TaskID = 1

	if reschedule := k.dispatchLocked(noTask, sysCall{op: OpSignal, target: target}); reschedule {
		t.Fatal("SIGNAL must never request a reschedule")
	}
	tc := k.tcb(target)
	if tc.wait {
		t.Fatal("an unarmed target must not be marked waiting by a dropped signal")
	}

	// Now arm it and confirm the next signal lands.
	if !k.dispatchLocked(target, sysCall{op: OpWait}) {
		t.Fatal("WAIT must request a reschedule")
	}
	if !tc.signal || !tc.wait {
		t.Fatal("WAIT must arm signal and set wait")
	}

	if k.dispatchLocked(noTask, sysCall{op: OpSignal, target: target}) {
		t.Fatal("SIGNAL must never request a reschedule")
	}
	if tc.signal || tc.wait {
		t.Fatal("a signal landing on an armed target must clear both signal and wait")
	}
}

func TestRescheduleAlwaysRequestsASwitch(t *testing.T) {
	k := newTestKernel(1)
	if !k.dispatchLocked(1, sysCall{op: OpReschedule}) {
		t.Fatal("RESCHEDULE must always request a reschedule")
	}
}
