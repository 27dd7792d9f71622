package clipboard

// Read returns the current clipboard content.
func Read() (string, error) {
	return run("powershell", []string{"-NoProfile", "-Command", "Get-Clipboard -Raw"}, "")
}

// Write replaces the clipboard content.
func Write(content string) error {
	_, err := run("powershell",
		[]string{"-NoProfile", "-Command", "Set-Clipboard -Value ([Console]::In.ReadToEnd())"},
		content)
	return err
}
