//go:build !darwin && !windows

package clipboard

import "os/exec"

// Read returns the current clipboard content via xclip or xsel.
func Read() (string, error) {
	if _, err := exec.LookPath("xclip"); err == nil {
		return run("xclip", []string{"-selection", "clipboard", "-o"}, "")
	}
	if _, err := exec.LookPath("xsel"); err == nil {
		return run("xsel", []string{"--clipboard", "--output"}, "")
	}
	return "", ErrNoTool
}

// Write replaces the clipboard content via xclip or xsel.
func Write(content string) error {
	if _, err := exec.LookPath("xclip"); err == nil {
		_, err := run("xclip", []string{"-selection", "clipboard"}, content)
		return err
	}
	if _, err := exec.LookPath("xsel"); err == nil {
		_, err := run("xsel", []string{"--clipboard", "--input"}, content)
		return err
	}
	return ErrNoTool
}
