package main

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/log"

	"objsh/shell-go/pkg/driver"
	"objsh/shell-go/pkg/interpreter"
	"objsh/shell-go/pkg/runtime"
)

const cliToolVersion = "objsh 0.0.0-dev"

func main() {
	log.SetDefaultsForClientTools()
	os.Exit(run(os.Args[1:]))
}

type globalFlags struct {
	help       bool
	version    bool
	logLevel   string
	configPath string
}

// settings is the resolved shell configuration shared by every subcommand.
type settings struct {
	home string
	cfg  *driver.Config
}

func run(args []string) int {
	flags, rest, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return 1
	}
	switch {
	case flags.help:
		printUsage()
		return 0
	case flags.version:
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	}

	s, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	if len(rest) == 0 {
		return runREPL(s)
	}
	switch rest[0] {
	case "repl":
		if len(rest) > 1 {
			fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(rest[1:], " "))
			return 1
		}
		return runREPL(s)
	case "run":
		return runFile(rest[1:])
	case "eval":
		return runEval(rest[1:])
	case "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	default:
		return runFile(rest)
	}
}

func parseGlobalFlags(args []string) (globalFlags, []string, error) {
	var flags globalFlags
	for idx, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return flags, args[idx:], nil
		}
		switch {
		case arg == "--help" || arg == "-h":
			flags.help = true
		case arg == "--version" || arg == "-V":
			flags.version = true
		case strings.HasPrefix(arg, "--log-level="):
			flags.logLevel = strings.TrimPrefix(arg, "--log-level=")
		case strings.HasPrefix(arg, "--config="):
			flags.configPath = strings.TrimPrefix(arg, "--config=")
		default:
			return flags, nil, fmt.Errorf("unknown flag %s", arg)
		}
	}
	return flags, nil, nil
}

func loadSettings(flags globalFlags) (*settings, error) {
	home, err := driver.ResolveHome()
	if err != nil {
		log.Warnf("%v; history and default config disabled", err)
		home = ""
	}

	path := flags.configPath
	if path == "" && home != "" {
		path = driver.ConfigPath(home)
	}
	cfg, err := driver.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	lvl, err := log.ValidateLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	log.SetLogLevel(lvl)
	return &settings{home: home, cfg: cfg}, nil
}

func runFile(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "objsh run requires a source file")
		return 1
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", args[0], err)
		return 1
	}
	return executeProgram(string(source))
}

func runEval(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "objsh eval requires program text")
		return 1
	}
	return executeProgram(strings.Join(args, " "))
}

func executeProgram(source string) int {
	interp, err := interpreter.New(interpreter.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start session: %v\n", err)
		return 1
	}
	val, err := interp.Run(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if val != nil {
		fmt.Fprintln(os.Stdout, runtime.Format(val))
	}
	return 0
}
