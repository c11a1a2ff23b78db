package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg := Load()
	if !cfg.Output.Color {
		t.Error("output.color should default to true")
	}
	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("watch.debounce_ms = %d, want 500", cfg.Watch.DebounceMS)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".sheetops")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "output:\n  color: false\nwatch:\n  debounce_ms: 1200\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.Output.Color {
		t.Error("output.color should be false per the config file")
	}
	if cfg.Watch.DebounceMS != 1200 {
		t.Errorf("watch.debounce_ms = %d, want 1200", cfg.Watch.DebounceMS)
	}
}

func TestInitWritesFile(t *testing.T) {
	isolateHome(t)

	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := os.Stat(ConfigPath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSetUnknownKey(t *testing.T) {
	isolateHome(t)

	if err := Set("bogus.key", "x"); err == nil {
		t.Error("expected error for unknown configuration key")
	}
}

func TestSetAndGet(t *testing.T) {
	isolateHome(t)

	if err := Set("watch.debounce_ms", "800"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	viper.Reset()
	if got := Get("watch.debounce_ms"); got != "800" {
		t.Errorf("Get(watch.debounce_ms) = %q, want 800", got)
	}
}

func TestConfigPath(t *testing.T) {
	home := isolateHome(t)

	p := ConfigPath()
	if !strings.HasPrefix(p, home) || !strings.HasSuffix(p, filepath.Join(".sheetops", "config.yaml")) {
		t.Errorf("unexpected config path %q", p)
	}
}
