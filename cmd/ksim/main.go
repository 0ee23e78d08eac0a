// Command ksim drives the kernel package's scenarios from the command
// line: the builtin S1-S6 scenarios, or a YAML scenario file, with
// structured logging of every task switch the run produces.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("ksim failed")
		os.Exit(1)
	}
}
