package main

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func setupTestFs(t *testing.T) afero.Afero {
	t.Helper()
	fs := afero.Afero{Fs: afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())}
	for _, dir := range []string{"root/sub", "root/.git/objects", "root/build"} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q) error = %v", dir, err)
		}
	}
	for _, file := range []string{"root/x.txt", "root/run.log", "root/build/out.bin", "root/sub/mod.py"} {
		if err := fs.WriteFile(file, []byte("fake"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", file, err)
		}
	}
	return fs
}

func execute(t *testing.T, fs afero.Afero, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(fs.Fs)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPrintTree(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		fs := setupTestFs(t)

		stdout, stderr, err := execute(t, fs, "root")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := strings.Join([]string{
			"root",
			"    ├─ .git",
			"    │   └─ objects",
			"    ├─ build",
			"    │   └─ out.bin",
			"    ├─ sub",
			"    │   └─ mod.py",
			"    ├─ run.log",
			"    └─ x.txt",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
		}
		if !strings.Contains(stderr, "Configuration file not found at print_tree_config.json") {
			t.Errorf("stderr = %q, want missing config message", stderr)
		}
	})

	t.Run("config and flags are merged", func(t *testing.T) {
		fs := setupTestFs(t)
		config := `{"avoid": [".git"], "omit_extensions": ["log"]}`
		if err := fs.WriteFile("print_tree_config.json", []byte(config), 0o644); err != nil {
			t.Fatal(err)
		}

		stdout, stderr, err := execute(t, fs, "root", "--avoid", "build")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := strings.Join([]string{
			"root",
			"    ├─ sub",
			"    │   └─ mod.py",
			"    └─ x.txt",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
		}
		if stderr != "" {
			t.Errorf("stderr = %q, want empty", stderr)
		}
	})

	t.Run("only restricts files and directories", func(t *testing.T) {
		fs := setupTestFs(t)

		stdout, _, err := execute(t, fs, "root", "--only", "py")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := "root\n    └─ sub\n        └─ mod.py\n"
		if stdout != want {
			t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
		}
	})

	t.Run("only with no matches", func(t *testing.T) {
		fs := setupTestFs(t)

		stdout, _, err := execute(t, fs, "root", "--only", "rs,go")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if stdout != "root\n" {
			t.Errorf("stdout = %q, want header only", stdout)
		}
	})

	t.Run("writes to output file", func(t *testing.T) {
		fs := setupTestFs(t)

		stdout, _, err := execute(t, fs, "root/sub", "--output", "tree.txt")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if stdout != "" {
			t.Errorf("stdout = %q, want empty", stdout)
		}

		content, err := fs.ReadFile("tree.txt")
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if want := "root/sub\n    └─ mod.py\n"; string(content) != want {
			t.Errorf("output file = %q, want %q", content, want)
		}
	})

	t.Run("output directory must exist", func(t *testing.T) {
		fs := setupTestFs(t)

		_, _, err := execute(t, fs, "root", "--output", "nope/tree.txt")
		if err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		fs := setupTestFs(t)

		stdout, _, err := execute(t, fs, "missing")
		if err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
		if !strings.Contains(err.Error(), "missing") {
			t.Errorf("error = %q, want it to name the directory", err)
		}
		if stdout != "missing\n" {
			t.Errorf("stdout = %q, want the header written before the failure", stdout)
		}
	})

	t.Run("partial tree is written before a traversal error", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced")
		}
		fs := setupTestFs(t)
		if err := fs.Chmod("root/sub", 0o000); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = fs.Chmod("root/sub", 0o755) })

		stdout, _, err := execute(t, fs, "root")
		if err == nil {
			t.Fatal("Execute() error = nil, want error")
		}

		want := strings.Join([]string{
			"root",
			"    ├─ .git",
			"    │   └─ objects",
			"    ├─ build",
			"    │   └─ out.bin",
			"    ├─ sub",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
		}
	})

	t.Run("requires exactly one directory", func(t *testing.T) {
		fs := setupTestFs(t)

		if _, _, err := execute(t, fs); err == nil {
			t.Error("Execute() with no args error = nil, want error")
		}
		if _, _, err := execute(t, fs, "root", "sub"); err == nil {
			t.Error("Execute() with two args error = nil, want error")
		}
	})
}
