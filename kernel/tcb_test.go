package kernel

import "testing"

func TestArenaCreateRoundsAndCarvesTopDown(t *testing.T) {
	a := kernelArena{top: 1000, limit: 0}

	addr, ok := a.create(50, tcbApproxSize)
	if !ok {
		t.Fatal("create() failed unexpectedly")
	}
	wantSize := roundUpWord(50) + tcbApproxSize
	if addr != 1000-wantSize {
		t.Fatalf("addr = %d, want %d", addr, 1000-wantSize)
	}
	if a.top != addr {
		t.Fatalf("arena.top = %d, want %d", a.top, addr)
	}
}

func TestArenaCreateFailsClosedAtLimit(t *testing.T) {
	// Scenario S4: a 512-byte region with 200-byte-stack tasks succeeds
	// exactly twice.
	a := kernelArena{top: 512, limit: 0}
	n := 0
	for {
		_, ok := a.create(200, tcbApproxSize)
		if !ok {
			break
		}
		n++
		if n > 10 {
			t.Fatal("allocator never reported out of memory")
		}
	}
	if n != 2 {
		t.Fatalf("successful allocations = %d, want 2", n)
	}
}

func TestRoundUpWord(t *testing.T) {
	cases := map[uint32]uint32{0: 0, 1: 4, 4: 4, 5: 8, 200: 200, 201: 204}
	for in, want := range cases {
		if got := roundUpWord(in); got != want {
			t.Errorf("roundUpWord(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBuildInitialFrame(t *testing.T) {
	stack := make([]byte, frameWords*wordSize)
	sp := buildInitialFrame(stack, 0xDEADBEEF)

	if sp != 0 {
		t.Fatalf("initial sp = %d, want 0", sp)
	}

	regs, newSP := contextRestore(stack, sp)
	for i, r := range regs {
		if r != 0 {
			t.Errorf("software frame word %d = %#x, want 0", i, r)
		}
	}
	if newSP != hardwareFrameStart*wordSize {
		t.Fatalf("sp after restoring software frame = %d, want %d", newSP, hardwareFrameStart*wordSize)
	}

	pc := beUint32(stack[frameHardwarePC*wordSize:])
	if pc != 0xDEADBEEF {
		t.Fatalf("hardware frame PC = %#x, want %#x", pc, 0xDEADBEEF)
	}
	xpsr := beUint32(stack[frameHardwarexPSR*wordSize:])
	if xpsr&thumbBit == 0 {
		t.Fatal("hardware frame xPSR does not have the Thumb bit set")
	}
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
