package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transunico.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdirForTest(t, t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend: command
copy_command: [clip.exe]
paste_command: [powershell.exe, -NoProfile, -Command, Get-Clipboard]
print: true
log_level: debug
log_format: json
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "command" || !cfg.Print || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if want := []string{"clip.exe"}; !reflect.DeepEqual(cfg.CopyCommand, want) {
		t.Fatalf("CopyCommand = %v, want %v", cfg.CopyCommand, want)
	}
	if len(cfg.PasteCommand) != 4 {
		t.Fatalf("PasteCommand = %v", cfg.PasteCommand)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "backend: portable\nlog_level: info\n")
	t.Setenv("TRANSUNICO_BACKEND", "none")
	t.Setenv("TRANSUNICO_COPY_COMMAND", "xclip,-selection,clipboard")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "none" {
		t.Fatalf("Backend = %q, want none", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if want := []string{"xclip", "-selection", "clipboard"}; !reflect.DeepEqual(cfg.CopyCommand, want) {
		t.Fatalf("CopyCommand = %v, want %v", cfg.CopyCommand, want)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "backend: portable\nprint: true\nlog_level: info\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "auto", "")
	flags.Bool("print", false, "")
	flags.String("log-level", "warn", "")
	if err := flags.Parse([]string{"--backend", "none"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "none" {
		t.Fatalf("Backend = %q, want flag value none", cfg.Backend)
	}
	// Flags left at their defaults do not override the file.
	if !cfg.Print {
		t.Fatal("Print should come from the file")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info from the file", cfg.LogLevel)
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
