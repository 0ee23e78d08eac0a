package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ksim",
		Short:         "Drive the Cortex-M task scheduler's scenarios on the host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every task switch")

	root.AddCommand(newRunCommand())
	root.AddCommand(newScenariosCommand())
	return root
}
