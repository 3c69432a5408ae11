package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Dictionary.GlossLang != "en" {
		t.Fatalf("unexpected gloss lang %q", cfg.Dictionary.GlossLang)
	}
	if cfg.ADBBinary() != "adb" {
		t.Fatalf("unexpected adb binary %q", cfg.ADBBinary())
	}
	if !filepath.IsAbs(cfg.Paths.PluginDataDir) {
		t.Fatalf("plugin data dir not expanded: %q", cfg.Paths.PluginDataDir)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
plugin_data_dir = "` + dir + `/data"

[dictionary]
gloss_lang = "ZH"
use_device_dictionary = { en = true }

[adb]
binary = "/opt/platform-tools/adb"
timeout = 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q %v", resolved, exists)
	}
	if cfg.Dictionary.GlossLang != "zh" {
		t.Fatalf("gloss lang not normalized: %q", cfg.Dictionary.GlossLang)
	}
	if !cfg.UseDeviceDictionary("en") || cfg.UseDeviceDictionary("ja") {
		t.Fatal("unexpected device dictionary preferences")
	}
	if cfg.ADBBinary() != "/opt/platform-tools/adb" {
		t.Fatalf("unexpected adb binary %q", cfg.ADBBinary())
	}
	if cfg.ADB.Timeout != 30 {
		t.Fatalf("unexpected adb timeout %d", cfg.ADB.Timeout)
	}
}

func TestValidateRejectsBadGlossLang(t *testing.T) {
	cfg := Default()
	cfg.Dictionary.GlossLang = "english"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDictionaryPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.PluginDataDir = "/data"
	got := cfg.DictionaryPath("ja", "en")
	want := filepath.Join("/data", "ja", "kll", "kll.ja.en.klld")
	if got != want {
		t.Fatalf("DictionaryPath = %q, want %q", got, want)
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[dictionary]") {
		t.Fatal("sample config missing dictionary section")
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}
