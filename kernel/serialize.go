package kernel

import (
	"encoding/binary"
	"fmt"
)

// snapshotVersion is bumped whenever the encoded layout below changes.
// Readers must reject a version they don't recognize rather than guess
// at a layout.
const snapshotVersion = 1

// Snapshot captures the kernel's inspectable scheduling state — not the
// live task goroutines themselves, which cannot be serialized — as a
// versioned binary blob. It exists for the host harness to dump kernel
// state for offline inspection or scenario regression fixtures, the way
// a debugger would dump a TCB table, not to support resuming a process
// from disk.
func (k *Kernel) Snapshot() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()

	buf := make([]byte, 0, 32+len(k.table)*16)
	buf = append(buf, snapshotVersion)
	buf = binary.BigEndian.AppendUint32(buf, k.arena.top)
	buf = binary.BigEndian.AppendUint32(buf, k.arena.limit)
	buf = binary.BigEndian.AppendUint32(buf, uint32(k.current))
	buf = binary.BigEndian.AppendUint32(buf, uint32(k.leaving))
	buf = binary.BigEndian.AppendUint32(buf, uint32(k.ready.head))
	buf = binary.BigEndian.AppendUint32(buf, uint32(k.ready.tail))
	buf = binary.BigEndian.AppendUint32(buf, k.tickCount)
	buf = binary.BigEndian.AppendUint32(buf, uint32(k.idle))
	buf = binary.BigEndian.AppendUint32(buf, k.schedLock)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(k.table)))

	for i := range k.table {
		t := &k.table[i]
		buf = binary.BigEndian.AppendUint32(buf, uint32(t.next))
		var flags uint8
		if t.wait {
			flags |= 1
		}
		if t.signal {
			flags |= 2
		}
		if t.done {
			flags |= 4
		}
		buf = append(buf, flags)
	}
	return buf
}

// SnapshotState is the decoded, inspectable form of a Snapshot blob.
// It carries the arena bounds and scheduling fields only; it has no
// notion of stacks, saved registers, wake channels, or entry functions —
// those belong to a live Kernel, not a point-in-time dump.
type SnapshotState struct {
	ArenaTop   uint32
	ArenaLimit uint32
	Current    TaskID
	Leaving    TaskID
	ReadyHead  TaskID
	ReadyTail  TaskID
	TickCount  uint32
	Idle       TaskID
	SchedLock  uint32
	Tasks      []TaskSnapshot
}

// TaskSnapshot is one TCB's scheduling-relevant fields at snapshot time.
type TaskSnapshot struct {
	Next   TaskID
	Wait   bool
	Signal bool
	Done   bool
}

// DecodeSnapshot parses a blob produced by Snapshot. It rejects any
// version it does not recognize rather than attempt a best-effort decode
// of an unknown layout.
func DecodeSnapshot(buf []byte) (SnapshotState, error) {
	var s SnapshotState
	if len(buf) < 1 {
		return s, fmt.Errorf("kernel: empty snapshot")
	}
	if buf[0] != snapshotVersion {
		return s, fmt.Errorf("kernel: unsupported snapshot version %d", buf[0])
	}
	buf = buf[1:]
	const headerWords = 10 // 9 scalar fields plus the task-count field
	if len(buf) < headerWords*4 {
		return s, fmt.Errorf("kernel: truncated snapshot header")
	}
	be := binary.BigEndian
	s.ArenaTop = be.Uint32(buf[0:4])
	s.ArenaLimit = be.Uint32(buf[4:8])
	s.Current = TaskID(be.Uint32(buf[8:12]))
	s.Leaving = TaskID(be.Uint32(buf[12:16]))
	s.ReadyHead = TaskID(be.Uint32(buf[16:20]))
	s.ReadyTail = TaskID(be.Uint32(buf[20:24]))
	s.TickCount = be.Uint32(buf[24:28])
	s.Idle = TaskID(be.Uint32(buf[28:32]))
	s.SchedLock = be.Uint32(buf[32:36])
	count := be.Uint32(buf[36:40])
	buf = buf[headerWords*4:]

	s.Tasks = make([]TaskSnapshot, count)
	for i := range s.Tasks {
		if len(buf) < 5 {
			return s, fmt.Errorf("kernel: truncated snapshot task table at index %d", i)
		}
		s.Tasks[i] = TaskSnapshot{
			Next:   TaskID(be.Uint32(buf[0:4])),
			Wait:   buf[4]&1 != 0,
			Signal: buf[4]&2 != 0,
			Done:   buf[4]&4 != 0,
		}
		buf = buf[5:]
	}
	return s, nil
}
