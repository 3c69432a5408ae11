package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"worddumb/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			unavailable := 0
			for _, status := range deps.CheckBinaries(deps.Default(cfg)) {
				kind := statusOK
				message := status.Command
				if !status.Available {
					message = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						unavailable++
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}
			if unavailable > 0 {
				return fmt.Errorf("%d required tool(s) unavailable", unavailable)
			}
			return nil
		},
	}
}
