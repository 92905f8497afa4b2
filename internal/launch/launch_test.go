package launch

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestArgv(t *testing.T) {
	shell := []string{"bash", "-c"}
	got := Argv(shell, "git status && ls")
	want := []string{"bash", "-c", "git status && ls"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Argv=%v want %v", got, want)
	}
	if len(shell) != 2 {
		t.Fatalf("Argv modified the shell slice: %v", shell)
	}
}

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestRunPassesEnvAndOutput(t *testing.T) {
	requireSh(t)
	var out bytes.Buffer
	env := append(os.Environ(), "LAUNCH_TEST_VALUE=hello")
	err := Run(Argv([]string{"sh", "-c"}, `printf '%s' "$LAUNCH_TEST_VALUE"`), env, nil, &out, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "hello" {
		t.Fatalf("output=%q want hello", got)
	}
}

func TestRunReportsExitStatus(t *testing.T) {
	requireSh(t)
	err := Run(Argv([]string{"sh", "-c"}, "exit 3"), os.Environ(), nil, nil, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 3 {
		t.Fatalf("Code=%d want 3", exitErr.Code)
	}
	if !strings.Contains(exitErr.Error(), "3") {
		t.Fatalf("unexpected message %q", exitErr.Error())
	}
}

func TestRunMissingBinary(t *testing.T) {
	err := Run([]string{"float-launcher-no-such-binary"}, nil, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected spawn error")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("missing binary must not look like an exit status")
	}
}

func TestRunEmptyArgv(t *testing.T) {
	if err := Run(nil, nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error for empty argv")
	}
}
