package main

import (
	"github.com/sirupsen/logrus"

	"github.com/user-none/go-cortex-rtos/kernel"
)

// logrusTrace implements kernel.Trace by emitting one structured log
// entry per event. The kernel package itself never logs — see
// kernel.Trace's doc comment — so this is the only place in the whole
// program a task switch becomes visible.
type logrusTrace struct {
	log *logrus.Logger
}

func (t logrusTrace) TaskCreated(id kernel.TaskID, stackSize uint32) {
	t.log.WithFields(logrus.Fields{
		"task":       uint32(id),
		"stackBytes": stackSize,
	}).Debug("task created")
}

func (t logrusTrace) TaskSwitch(from, to kernel.TaskID) {
	t.log.WithFields(logrus.Fields{
		"from": uint32(from),
		"to":   uint32(to),
	}).Debug("task switch")
}

func (t logrusTrace) Halt(reason string) {
	t.log.WithField("reason", reason).Warn("halt")
}
