package config

const (
	defaultPluginDataDir = "~/.local/share/worddumb/data"
	defaultStagingDir    = "~/.local/share/worddumb/staging"
	defaultLogDir        = "~/.local/share/worddumb/logs"
	defaultGlossLang     = "en"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultNtfyTimeout   = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PluginDataDir: defaultPluginDataDir,
			StagingDir:    defaultStagingDir,
			LogDir:        defaultLogDir,
		},
		Dictionary: Dictionary{
			GlossLang:           defaultGlossLang,
			UseDeviceDictionary: map[string]bool{},
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
