//go:build !windows

package clipboard

import (
	"os/exec"
	"strings"
	"testing"
)

func TestRunEchoesStdin(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	got, err := run("cat", nil, "hello clipboard")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got != "hello clipboard" {
		t.Errorf("got %q, want %q", got, "hello clipboard")
	}
}

func TestRunCommandFailure(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := run("sh", []string{"-c", "echo oops >&2; exit 3"}, "")
	if err == nil {
		t.Fatal("run() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("error %q does not carry stderr output", err)
	}
}

func TestRunMissingTool(t *testing.T) {
	t.Parallel()

	if _, err := run("definitely-not-a-real-tool-xyz", nil, ""); err == nil {
		t.Fatal("run() error = nil, want exec error")
	}
}
