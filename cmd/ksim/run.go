package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/user-none/go-cortex-rtos/internal/scenario"
)

func newRunCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run [builtin-scenario-name]",
		Short: "Run a builtin scenario, or a YAML scenario file given with --file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace := logrusTrace{log: log}

			if file != "" {
				cfg, err := scenario.Load(file)
				if err != nil {
					return err
				}
				result, err := scenario.Run(cfg, trace)
				if err != nil {
					return err
				}
				printResult(cmd, result)
				return nil
			}

			if len(args) != 1 {
				return errors.New("run requires a scenario name, or --file pointing at a scenario YAML file")
			}
			builder, ok := scenario.Builtins()[args[0]]
			if !ok {
				return errors.Errorf("unknown scenario %q; see `ksim scenarios`", args[0])
			}
			printResult(cmd, builder(trace))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a YAML scenario file, instead of a builtin name")
	return cmd
}

func printResult(cmd *cobra.Command, r scenario.Result) {
	status := "FAIL"
	if r.Completed {
		status = "OK"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-4s ticks=%-6d %s\n", r.Name, status, r.Ticks, r.Detail)
}
