package deps

import "worddumb/internal/config"

// Default returns the external tools a device transfer can call. adb is
// optional: transfers to a mounted Kindle never shell out, so its absence only
// disables the Android path.
func Default(cfg *config.Config) []Requirement {
	binary := "adb"
	if cfg != nil {
		binary = cfg.ADBBinary()
	}
	return []Requirement{
		{
			Name:        "adb",
			Command:     binary,
			Description: "Pushes companion files to the Kindle Android app",
			Optional:    true,
		},
	}
}
