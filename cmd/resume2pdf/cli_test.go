package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdout:   stdout,
		Stderr:   stderr,
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	return env, stdout, stderr
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{
		"-i", "cv.yaml",
		"-o", "out/cv.pdf",
		"-f", "pdf",
		"--engines", "pdflatex,xelatex",
		"--timeout", "30s",
		"-v",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.input != "cv.yaml" {
		t.Errorf("input = %q", flags.input)
	}
	if flags.output != "out/cv.pdf" {
		t.Errorf("output = %q", flags.output)
	}
	if len(flags.engines) != 2 || flags.engines[0] != "pdflatex" {
		t.Errorf("engines = %v", flags.engines)
	}
	if flags.timeout != 30*time.Second {
		t.Errorf("timeout = %v", flags.timeout)
	}
	if !flags.verbose {
		t.Error("verbose not set")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags.format != "pdf" {
		t.Errorf("default format = %q, want pdf", flags.format)
	}
	if flags.engines != nil {
		t.Errorf("default engines = %v, want nil", flags.engines)
	}
	if flags.timeout != 0 {
		t.Errorf("default timeout = %v, want 0", flags.timeout)
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	code, err := run([]string{"--help"}, env)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	code, err := run([]string{"--no-such-flag"}, env)
	if err == nil {
		t.Error("expected error")
	}
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	code, err := run([]string{"--version"}, env)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "resume2pdf") {
		t.Errorf("version output %q lacks program name", stdout.String())
	}
}

func TestRunNoInput(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	code, err := run(nil, env)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("got %v, want ErrNoInput", err)
	}
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunBadFormat(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	code, err := run([]string{"-i", "cv.yaml", "-f", "docx"}, env)
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunNegativeTimeout(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	code, err := run([]string{"-i", "cv.yaml", "--timeout", "-1s"}, env)
	if !errors.Is(err, ErrBadTimeout) {
		t.Errorf("got %v, want ErrBadTimeout", err)
	}
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunMissingInputFile(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	missing := filepath.Join(t.TempDir(), "ghost.yaml")
	code, err := run([]string{"-i", missing}, env)
	if err == nil {
		t.Fatal("expected error")
	}
	if code != ExitIO {
		t.Errorf("exit code = %d, want %d", code, ExitIO)
	}
}

func TestRunConvertNoEngine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "cv.yaml")
	yaml := "full_name: Ada Lovelace\njob_title: Engineer\n"
	if err := os.WriteFile(input, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	// The service resolves engines through exec.LookPath; pointing the
	// engine list at a name that cannot exist keeps the test hermetic.
	env, _, _ := testEnv()
	code, err := run([]string{
		"-i", input,
		"-o", filepath.Join(dir, "cv.pdf"),
		"--engines", "definitely-not-a-latex-engine",
		"-q",
	}, env)
	if err == nil {
		t.Fatal("expected error")
	}
	if code != ExitCompile {
		t.Errorf("exit code = %d, want %d", code, ExitCompile)
	}
}
