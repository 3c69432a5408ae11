package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"worddumb/internal/device"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report Kindle USB attach events until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger := ctx.logger()
			out := cmd.OutOrStdout()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			monitor := device.NewMonitor(logger, func(ctx context.Context, devpath string) {
				fmt.Fprintf(out, "Kindle attached: %s\n", devpath)
			})
			if err := monitor.Start(runCtx); err != nil {
				return fmt.Errorf("start usb monitor: %w", err)
			}
			defer monitor.Stop()

			fmt.Fprintln(out, "Watching for Kindle devices (Ctrl-C to stop)")
			<-runCtx.Done()
			return nil
		},
	}
}
