package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"

	"objsh/shell-go/pkg/driver"
	"objsh/shell-go/pkg/interpreter"
	"objsh/shell-go/pkg/runtime"
)

type replSession struct {
	interp *interpreter.Interpreter
	cfg    *driver.Config
	user   string
	out    io.Writer
	errOut io.Writer
}

func (s *replSession) prompt() string {
	branch := ""
	if s.cfg.ShowGitBranch && strings.Contains(s.cfg.Prompt, "{branch}") {
		branch = gitBranch(s.interp.WorkDir())
	}
	return renderPrompt(s.cfg.Prompt, s.user, s.interp.WorkDir(), branch)
}

// handle runs one line of input. It reports whether the session should end
// and with which exit status.
func (s *replSession) handle(line string) (bool, int) {
	switch line {
	case ":quit", ":exit":
		return true, 0
	}
	val, err := s.interp.Run(line)
	if err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		if s.cfg.OnHardFault == driver.HardFaultExit {
			return true, 1
		}
		return false, 0
	}
	if val != nil {
		fmt.Fprintln(s.out, runtime.Format(val))
	}
	return false, 0
}

func runREPL(s *settings) int {
	interp, err := interpreter.New(interpreter.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start session: %v\n", err)
		return 1
	}
	sess := &replSession{
		interp: interp,
		cfg:    s.cfg,
		user:   currentUser(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := s.cfg.HistoryPath(s.home)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	if s.cfg.Banner != "" {
		fmt.Fprintln(os.Stdout, s.cfg.Banner)
	}

	code := 0
	for {
		line, err := ln.Prompt(sess.prompt())
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			code = 1
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if done, status := sess.handle(line); done {
			code = status
			break
		}
	}

	if histPath != "" {
		saveHistory(ln, histPath)
	}
	return code
}

func saveHistory(ln *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warnf("history: %v", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warnf("history: %v", err)
	}
}
