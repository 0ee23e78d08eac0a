package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user-none/go-cortex-rtos/internal/scenario"
)

func newScenariosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the builtin scenario names run accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
