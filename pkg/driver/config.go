package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gopkg.in/yaml.v3"
)

// HardFaultPolicy selects what an interactive session does after a hard fault.
type HardFaultPolicy string

const (
	// HardFaultExit ends the session with a non-zero status.
	HardFaultExit HardFaultPolicy = "exit"
	// HardFaultReport prints the fault and keeps the session alive.
	HardFaultReport HardFaultPolicy = "report"
)

const (
	DefaultBanner      = "Objective Shell"
	DefaultPrompt      = "{user}> "
	DefaultHistoryFile = "history"
	DefaultLogLevel    = "info"
)

// Config holds the user's shell preferences from config.yml.
type Config struct {
	Path          string
	Banner        string
	Prompt        string
	HistoryFile   string
	LogLevel      string
	OnHardFault   HardFaultPolicy
	ShowGitBranch bool
}

type configFile struct {
	Banner        *string `yaml:"banner"`
	Prompt        *string `yaml:"prompt"`
	HistoryFile   *string `yaml:"history_file"`
	LogLevel      *string `yaml:"log_level"`
	OnHardFault   *string `yaml:"on_hard_fault"`
	ShowGitBranch *bool   `yaml:"show_git_branch"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Banner:        DefaultBanner,
		Prompt:        DefaultPrompt,
		HistoryFile:   DefaultHistoryFile,
		LogLevel:      DefaultLogLevel,
		OnHardFault:   HardFaultExit,
		ShowGitBranch: true,
	}
}

// LoadConfig reads config.yml at path. A missing or empty file yields the
// defaults; unknown keys and invalid values are errors.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg.Path = absPath

	file, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	raw.applyTo(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) applyTo(cfg *Config) {
	if raw.Banner != nil {
		cfg.Banner = *raw.Banner
	}
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.HistoryFile != nil {
		cfg.HistoryFile = strings.TrimSpace(*raw.HistoryFile)
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
	if raw.OnHardFault != nil {
		cfg.OnHardFault = HardFaultPolicy(strings.ToLower(strings.TrimSpace(*raw.OnHardFault)))
	}
	if raw.ShowGitBranch != nil {
		cfg.ShowGitBranch = *raw.ShowGitBranch
	}
}

func (c *Config) validate() error {
	var errs ValidationError
	if _, err := log.ValidateLevel(c.LogLevel); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not a known level", c.LogLevel))
	}
	if !c.OnHardFault.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("on_hard_fault must be %q or %q, got %q", HardFaultExit, HardFaultReport, c.OnHardFault))
	}
	if strings.ContainsRune(c.Prompt, '\n') {
		errs.Issues = append(errs.Issues, "prompt must be a single line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// IsValid reports whether the policy is recognised.
func (p HardFaultPolicy) IsValid() bool {
	switch p {
	case HardFaultExit, HardFaultReport:
		return true
	default:
		return false
	}
}

// HistoryPath returns where the REPL keeps its history, or "" when history
// is disabled by an empty history_file.
func (c *Config) HistoryPath(home string) string {
	if c.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) || home == "" {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

// ResolveHome returns the shell's state directory: $OBJSH_HOME, else
// ~/.objsh.
func ResolveHome() (string, error) {
	if env := strings.TrimSpace(os.Getenv("OBJSH_HOME")); env != "" {
		return filepath.Abs(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".objsh"), nil
}

// ConfigPath returns the config file location: $OBJSH_CONFIG, else
// config.yml inside home.
func ConfigPath(home string) string {
	if env := strings.TrimSpace(os.Getenv("OBJSH_CONFIG")); env != "" {
		return env
	}
	return filepath.Join(home, "config.yml")
}
