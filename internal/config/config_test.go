package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRegistersDefaults(t *testing.T) {
	cfg := New()

	if got := cfg.GetString(ReactionFile); got != "" {
		t.Errorf("ReactionFile default = %q, want empty", got)
	}
	if got := cfg.Int64(Seed); got != 1 {
		t.Errorf("Seed default = %d, want 1", got)
	}
	if got := cfg.GetString(RandomBackend); got != "mathrand" {
		t.Errorf("RandomBackend default = %q, want mathrand", got)
	}
	if got := cfg.GetBool(LogIllEvents); got != false {
		t.Errorf("LogIllEvents default = %v, want false", got)
	}
}

func TestFlagOverridesDefault(t *testing.T) {
	cfg := New()
	if err := cfg.Root.Parse([]string{"--" + Seed, "7", "--" + RandomBackend, "xexprand"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := cfg.Int64(Seed); got != 7 {
		t.Errorf("Seed after flag parse = %d, want 7", got)
	}
	if got := cfg.GetString(RandomBackend); got != "xexprand" {
		t.Errorf("RandomBackend after flag parse = %q, want xexprand", got)
	}
}

func TestLoadRunOptionsFileNoopWhenUnset(t *testing.T) {
	cfg := New()
	if err := cfg.LoadRunOptionsFile(); err != nil {
		t.Errorf("LoadRunOptionsFile() with no RunOptions set = %v, want nil", err)
	}
}

func TestLoadRunOptionsFileDecodesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte(Seed+" = 9\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg := New()
	cfg.Viper.Set(RunOptions, path)
	if err := cfg.LoadRunOptionsFile(); err != nil {
		t.Fatalf("LoadRunOptionsFile() error = %v", err)
	}
	if got := cfg.Int64(Seed); got != 9 {
		t.Errorf("Seed after TOML merge = %d, want 9", got)
	}
}

func TestLoadRunOptionsFileDecodesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(Seed+": 11\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg := New()
	cfg.Viper.Set(RunOptions, path)
	if err := cfg.LoadRunOptionsFile(); err != nil {
		t.Fatalf("LoadRunOptionsFile() error = %v", err)
	}
	if got := cfg.Int64(Seed); got != 11 {
		t.Errorf("Seed after YAML merge = %d, want 11", got)
	}
}
