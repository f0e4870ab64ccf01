package resource

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	base := t.TempDir()
	if got, want := Resolve(base, "notes.txt"), filepath.Join(base, "notes.txt"); got != want {
		t.Fatalf("Resolve relative = %q, want %q", got, want)
	}
	abs := filepath.Join(base, "a", "..", "b")
	if got, want := Resolve("/elsewhere", abs), filepath.Join(base, "b"); got != want {
		t.Fatalf("Resolve absolute = %q, want %q", got, want)
	}
}

func TestEnsureFileCreatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "data.txt")
	if err := EnsureFile(path); err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}
	if err := WriteString(path, "keep"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := EnsureFile(path); err != nil {
		t.Fatalf("EnsureFile second call: %v", err)
	}
	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "keep" {
		t.Fatalf("EnsureFile truncated existing content: %q", got)
	}
}

func TestEnsureFolderRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := EnsureFolder(path); err == nil {
		t.Fatalf("expected error when a file occupies the folder path")
	}
}

func TestWriteStringTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := WriteString(path, "a much longer text"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := WriteString(path, "short"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	got, _ := ReadString(path)
	if got != "short" {
		t.Fatalf("content = %q, want short", got)
	}
}

func TestListClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "b-dir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "b-dir"), filepath.Join(dir, "c-link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []Entry{
		{Path: filepath.Join(dir, "a.txt"), IsDir: false},
		{Path: filepath.Join(dir, "b-dir"), IsDir: true},
		{Path: filepath.Join(dir, "c-link"), IsDir: true},
	}
	if len(entries) != len(want) {
		t.Fatalf("List = %#v", entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d = %#v, want %#v", i, entries[i], want[i])
		}
	}
}

func TestRemoveFolderRecursive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tree")
	if err := os.MkdirAll(filepath.Join(dir, "x", "y"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := RemoveFolder(dir); err != nil {
		t.Fatalf("RemoveFolder: %v", err)
	}
	if IsDir(dir) {
		t.Fatalf("folder still present")
	}
}

func TestSystemLauncherStart(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	var out bytes.Buffer
	err := SystemLauncher{}.Start(Process{
		Name:   "sh",
		Args:   []string{"-c", "pwd; exit 3"},
		Dir:    dir,
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	got := filepath.Clean(string(bytes.TrimSpace(out.Bytes())))
	want, _ := filepath.EvalSymlinks(dir)
	if got != dir && got != want {
		t.Fatalf("child ran in %q, want %q", got, dir)
	}
}

func TestSystemLauncherStartMissingExecutable(t *testing.T) {
	err := SystemLauncher{}.Start(Process{Name: "objsh-definitely-not-installed"})
	if err == nil {
		t.Fatalf("expected spawn failure")
	}
}
