package resource

import (
	"errors"
	"io"
	"os/exec"

	"github.com/skratchdot/open-golang/open"
)

// Process describes one blocking child-process run.
type Process struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher hands paths to the desktop and runs executables.
type Launcher interface {
	// Open passes path to the platform's default handler.
	Open(path string) error
	// Start runs the process and waits for it to exit.
	Start(p Process) error
}

// SystemLauncher is the Launcher backed by the host operating system.
type SystemLauncher struct{}

func (SystemLauncher) Open(path string) error {
	return open.Run(path)
}

// Start returns an error only when the process could not be run at all; a
// non-zero exit status is the child's business.
func (SystemLauncher) Start(p Process) error {
	cmd := exec.Command(p.Name, p.Args...)
	cmd.Dir = p.Dir
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
