package clipboard

// Read returns the current clipboard content.
func Read() (string, error) {
	return run("pbpaste", nil, "")
}

// Write replaces the clipboard content.
func Write(content string) error {
	_, err := run("pbcopy", nil, content)
	return err
}
