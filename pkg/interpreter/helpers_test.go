package interpreter

import (
	"bytes"
	"testing"

	"objsh/shell-go/pkg/resource"
	"objsh/shell-go/pkg/runtime"
)

// recordingLauncher captures Open and Start calls instead of touching the
// desktop or spawning processes.
type recordingLauncher struct {
	opened   []string
	started  []resource.Process
	openErr  error
	startErr error
}

func (r *recordingLauncher) Open(path string) error {
	r.opened = append(r.opened, path)
	return r.openErr
}

func (r *recordingLauncher) Start(p resource.Process) error {
	r.started = append(r.started, p)
	return r.startErr
}

type testSession struct {
	interp   *Interpreter
	dir      string
	stdout   *bytes.Buffer
	launcher *recordingLauncher
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()
	dir := t.TempDir()
	out := &bytes.Buffer{}
	launcher := &recordingLauncher{}
	interp, err := New(Options{WorkDir: dir, Stdout: out, Stderr: out, Launcher: launcher})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testSession{interp: interp, dir: dir, stdout: out, launcher: launcher}
}

func mustRun(t *testing.T, interp *Interpreter, src string) runtime.Value {
	t.Helper()
	val, err := interp.Run(src)
	if err != nil {
		t.Fatalf("Run(%q) returned error: %v", src, err)
	}
	return val
}

func mustEval(t *testing.T, interp *Interpreter, expr string) runtime.Value {
	t.Helper()
	val, err := interp.Eval(expr)
	if err != nil {
		t.Fatalf("Eval(%q) returned error: %v", expr, err)
	}
	return val
}

func expectNumber(t *testing.T, val runtime.Value, want float64) {
	t.Helper()
	num, ok := val.(runtime.NumberValue)
	if !ok || num.Val != want {
		t.Fatalf("expected Number %v, got %#v", want, val)
	}
}

func expectString(t *testing.T, val runtime.Value, want string) {
	t.Helper()
	str, ok := val.(runtime.StringValue)
	if !ok || str.Val != want {
		t.Fatalf("expected String %q, got %#v", want, val)
	}
}

func expectSoftFault(t *testing.T, val runtime.Value, err error) {
	t.Helper()
	if !IsSoftFault(err) {
		t.Fatalf("expected soft fault, got value %#v err %v", val, err)
	}
	if val != nil {
		t.Fatalf("soft fault should not carry a value, got %#v", val)
	}
}
