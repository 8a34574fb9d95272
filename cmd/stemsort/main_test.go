package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

// runCLI executes the command tree with captured output. The HOME override
// keeps config resolution away from the developer's real files.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupCLITestEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, home)
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestRootCommandShowsHelp(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("root command: %v", err)
	}
	requireContains(t, out, "import")
	requireContains(t, out, "analyze")
	requireContains(t, out, "config")
}

func TestUnknownCommandFails(t *testing.T) {
	setupCLITestEnv(t)

	if _, err := runCLI(t, "frobnicate"); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}
