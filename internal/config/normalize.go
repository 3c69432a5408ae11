package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDictionary()
	c.normalizeADB()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.PluginDataDir) == "" {
		c.Paths.PluginDataDir = defaultPluginDataDir
	}
	if c.Paths.PluginDataDir, err = expandPath(c.Paths.PluginDataDir); err != nil {
		return fmt.Errorf("paths.plugin_data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StagingDir) == "" {
		c.Paths.StagingDir = defaultStagingDir
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDictionary() {
	c.Dictionary.GlossLang = strings.ToLower(strings.TrimSpace(c.Dictionary.GlossLang))
	if c.Dictionary.GlossLang == "" {
		c.Dictionary.GlossLang = defaultGlossLang
	}
	if c.Dictionary.UseDeviceDictionary == nil {
		c.Dictionary.UseDeviceDictionary = map[string]bool{}
	}
}

func (c *Config) normalizeADB() {
	c.ADB.Binary = strings.TrimSpace(c.ADB.Binary)
	if c.ADB.Timeout < 0 {
		c.ADB.Timeout = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
