package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"worddumb/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.PluginDataDir = filepath.Join(base, "plugin-data")
	cfgVal.Paths.StagingDir = filepath.Join(base, "staging")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGlossLang sets the Word Wise gloss language on the test config.
func WithGlossLang(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Dictionary.GlossLang = lang
	}
}

// WithADBBinary overrides the adb binary path on the test config.
func WithADBBinary(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.ADB.Binary = path
	}
}

// WithDictionary writes a dictionary file for the lemma language so transfers
// against the test config have something to provision.
func WithDictionary(lemmaLang string) ConfigOption {
	return func(b *configBuilder) {
		path := b.cfg.DictionaryPath(lemmaLang, b.cfg.Dictionary.GlossLang)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			b.t.Fatalf("mkdir dictionary dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("klld"), 0o644); err != nil {
			b.t.Fatalf("write dictionary %s: %v", lemmaLang, err)
		}
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, adb is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"adb"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StagingDir)
}
