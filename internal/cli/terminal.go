package cli

import tsize "github.com/kopoli/go-terminal-size"

// TerminalWidth reports the column count of the controlling terminal.
func TerminalWidth() (int, error) {
	size, err := tsize.GetSize()
	if err != nil {
		return 0, err
	}
	return size.Width, nil
}
