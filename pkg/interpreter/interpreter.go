package interpreter

import (
	"fmt"
	"io"
	"os"

	"objsh/shell-go/pkg/resource"
	"objsh/shell-go/pkg/runtime"
)

// Options configures a new Interpreter. Zero values fall back to the
// process working directory, the process standard streams and the
// operating system launcher.
type Options struct {
	WorkDir  string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Launcher resource.Launcher
}

// Interpreter is one shell session: the session environment plus the
// working directory that relative paths resolve against. It is not safe for
// concurrent use.
type Interpreter struct {
	global   *runtime.Environment
	workDir  string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	launcher resource.Launcher
}

// New returns a session whose environment holds only Current-Folder.
func New(opts Options) (*Interpreter, error) {
	dir := opts.WorkDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}
	dir = resource.Resolve("", dir)
	if !resource.IsDir(dir) {
		return nil, fmt.Errorf("working directory %s is not a directory", dir)
	}

	i := &Interpreter{
		global:   runtime.NewEnvironment(),
		workDir:  dir,
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		launcher: opts.Launcher,
	}
	if i.stdin == nil {
		i.stdin = os.Stdin
	}
	if i.stdout == nil {
		i.stdout = os.Stdout
	}
	if i.stderr == nil {
		i.stderr = os.Stderr
	}
	if i.launcher == nil {
		i.launcher = resource.SystemLauncher{}
	}
	i.global.Define(runtime.CurrentFolderKey, runtime.FolderValue{Path: dir})
	return i, nil
}

// GlobalEnvironment returns the session environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// WorkDir returns the directory relative paths currently resolve against.
func (i *Interpreter) WorkDir() string {
	return i.workDir
}

// Run executes program text against the session environment and returns
// the value of the last statement. A nil value with a nil error means the
// program produced no result. Only hard faults are returned as errors.
func (i *Interpreter) Run(source string) (runtime.Value, error) {
	return i.run(source, i.global)
}

// Eval evaluates a single expression against the session environment.
// Unlike Run it reports soft faults, as *SoftFault errors.
func (i *Interpreter) Eval(expr string) (runtime.Value, error) {
	return i.evaluate(expr, i.global)
}

// ParseValue resolves one token against a snapshot of the session
// environment.
func (i *Interpreter) ParseValue(token string) (runtime.Value, error) {
	return i.parseValue(token, i.global.Clone())
}
