package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"worddumb/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Paths", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  plugin_data_dir: %s\n", cfg.Paths.PluginDataDir)
			fmt.Fprintf(out, "  staging_dir:     %s\n", cfg.Paths.StagingDir)
			fmt.Fprintf(out, "  log_dir:         %s\n", cfg.Paths.LogDir)

			for _, line := range renderSectionHeader("Dictionary", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  gloss_lang: %s\n", cfg.Dictionary.GlossLang)
			if len(cfg.Dictionary.UseDeviceDictionary) > 0 {
				langs := make([]string, 0, len(cfg.Dictionary.UseDeviceDictionary))
				for lang := range cfg.Dictionary.UseDeviceDictionary {
					langs = append(langs, lang)
				}
				sort.Strings(langs)
				var device []string
				for _, lang := range langs {
					if cfg.Dictionary.UseDeviceDictionary[lang] {
						device = append(device, lang)
					}
				}
				fmt.Fprintf(out, "  use_device_dictionary: %s\n", strings.Join(device, ", "))
			}

			for _, line := range renderSectionHeader("ADB", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  binary:  %s\n", cfg.ADBBinary())
			fmt.Fprintf(out, "  timeout: %ds\n", cfg.ADB.Timeout)

			for _, line := range renderSectionHeader("Notifications", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  ntfy configured: %s\n", yesNo(cfg.Notifications.NtfyTopic != ""))

			for _, line := range renderSectionHeader("Logging", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "  format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  level:  %s\n", cfg.Logging.Level)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to point plugin_data_dir at your dictionary files before sending.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}
