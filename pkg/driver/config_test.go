package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(strings.TrimLeft(contents, "\n")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Banner != DefaultBanner || cfg.Prompt != DefaultPrompt || cfg.OnHardFault != HardFaultExit || !cfg.ShowGitBranch {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.HistoryFile != DefaultHistoryFile {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
banner: "Welcome"
prompt: "{user}@{folder} ({branch})$ "
history_file: ""
log_level: debug
on_hard_fault: Report
show_git_branch: false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %s, want %s", cfg.Path, path)
	}
	if cfg.Banner != "Welcome" || cfg.Prompt != "{user}@{folder} ({branch})$ " {
		t.Fatalf("unexpected banner/prompt %#v", cfg)
	}
	if cfg.HistoryFile != "" || cfg.HistoryPath("/home/x/.objsh") != "" {
		t.Fatalf("expected history disabled, got %q", cfg.HistoryFile)
	}
	if cfg.LogLevel != "debug" || cfg.OnHardFault != HardFaultReport || cfg.ShowGitBranch {
		t.Fatalf("unexpected settings %#v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "colour: blue\n"))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
log_level: chatty
on_hard_fault: ignore
prompt: "a\nb"
`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %v", verr.Issues)
	}
	if !strings.HasPrefix(err.Error(), "config validation failed:\n- ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.HistoryPath("/srv/objsh"); got != filepath.Join("/srv/objsh", "history") {
		t.Fatalf("HistoryPath = %s", got)
	}
	cfg.HistoryFile = "/var/tmp/hist"
	if got := cfg.HistoryPath("/srv/objsh"); got != "/var/tmp/hist" {
		t.Fatalf("absolute HistoryPath = %s", got)
	}
}

func TestResolveHomeAndConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("OBJSH_HOME", home)
	t.Setenv("OBJSH_CONFIG", "")
	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome returned error: %v", err)
	}
	if got != home {
		t.Fatalf("ResolveHome = %s, want %s", got, home)
	}
	if path := ConfigPath(got); path != filepath.Join(home, "config.yml") {
		t.Fatalf("ConfigPath = %s", path)
	}

	t.Setenv("OBJSH_CONFIG", "/etc/objsh.yml")
	if path := ConfigPath(got); path != "/etc/objsh.yml" {
		t.Fatalf("ConfigPath with override = %s", path)
	}

	t.Setenv("OBJSH_HOME", "")
	t.Setenv("HOME", home)
	got, err = ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome returned error: %v", err)
	}
	if got != filepath.Join(home, ".objsh") {
		t.Fatalf("ResolveHome fallback = %s", got)
	}
}
