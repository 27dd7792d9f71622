// Package clipboard reads from and writes to the system clipboard by
// shelling out to the platform's native tool (pbcopy/pbpaste on macOS,
// powershell on Windows, xclip or xsel on other systems).
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoTool indicates no clipboard tool is available on this system.
var ErrNoTool = errors.New("no clipboard tool found")

// run executes a clipboard tool, feeding stdin when non-empty, and
// returns its stdout.
func run(name string, args []string, stdin string) (string, error) {
	cmd := exec.Command(name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return stdout.String(), nil
}
