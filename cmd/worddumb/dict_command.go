package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"worddumb/internal/dict"
	"worddumb/internal/logging"
	"worddumb/internal/notifications"
)

func newDictCommand(ctx *commandContext) *cobra.Command {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Word Wise dictionary utilities",
	}

	dictCmd.AddCommand(newDictPushCommand(ctx))
	dictCmd.AddCommand(newDictPullCommand(ctx))

	return dictCmd
}

func newDictPushCommand(ctx *commandContext) *cobra.Command {
	var (
		language   string
		mountPoint string
		pkg        string
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Copy the Word Wise dictionary for a language to a device",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()
			adbClient := ctx.adbClient(logger)
			provisioner := dict.NewProvisioner(cfg, adbClient, logger)

			switch {
			case mountPoint != "":
				if err := provisioner.ToKindle(language, dict.KindleKlldPath(mountPoint)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dictionary for %q provisioned at %s\n", language, mountPoint)
			case pkg != "":
				if adbClient == nil {
					return fmt.Errorf("adb binary not found; required for app pushes")
				}
				if err := provisioner.ToAndroid(cmd.Context(), language, pkg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dictionary for %q pushed to %s\n", language, pkg)
			default:
				return fmt.Errorf("either --mount or --package is required")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Book language the dictionary is for")
	cmd.Flags().StringVar(&mountPoint, "mount", "", "Mount point of a connected Kindle volume")
	cmd.Flags().StringVar(&pkg, "package", "", "Kindle Android app package name")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

func newDictPullCommand(ctx *commandContext) *cobra.Command {
	var (
		mountPoint string
		pkg        string
		destDir    string
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Export Word Wise dictionaries from a device to local storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()
			adbClient := ctx.adbClient(logger)
			provisioner := dict.NewProvisioner(cfg, adbClient, logger)

			if destDir == "" {
				destDir = cfg.Paths.StagingDir
			}

			switch {
			case mountPoint != "":
				if err := provisioner.PullFromKindle(mountPoint, destDir); err != nil {
					return err
				}
			case pkg != "":
				if adbClient == nil {
					return fmt.Errorf("adb binary not found; required for app pulls")
				}
				if err := provisioner.PullFromAndroid(cmd.Context(), pkg, destDir); err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --mount or --package is required")
			}

			notifier := notifications.NewService(cfg)
			if err := notifier.NotifyDictionaryExported(cmd.Context(), destDir); err != nil {
				logger.Warn("dictionary export notification failed", logging.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dictionaries exported to %s\n", destDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&mountPoint, "mount", "", "Mount point of a connected Kindle volume")
	cmd.Flags().StringVar(&pkg, "package", "", "Kindle Android app package name")
	cmd.Flags().StringVar(&destDir, "out", "", "Destination directory (defaults to the staging directory)")

	return cmd
}
