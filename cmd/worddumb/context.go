package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"worddumb/internal/adb"
	"worddumb/internal/config"
	"worddumb/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// adbClient resolves the adb binary and constructs a client, or returns nil
// when adb is unavailable. Mounted transfers work without it.
func (c *commandContext) adbClient(logger *slog.Logger) *adb.Client {
	cfg := c.configValue()
	if cfg == nil {
		return nil
	}
	binary, err := adb.Find(cfg.ADB.Binary)
	if err != nil {
		return nil
	}
	client, err := adb.New(binary, cfg.ADB.Timeout, adb.WithLogger(logger))
	if err != nil {
		return nil
	}
	return client
}

func (c *commandContext) logger() *slog.Logger {
	cfg := c.configValue()
	if cfg == nil {
		return logging.NewNop()
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
