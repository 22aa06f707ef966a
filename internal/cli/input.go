package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/example/advent/internal/config"
)

// readInput resolves the puzzle input for a day. An explicit --input
// path wins, then piped stdin, then the workspace's conventional
// inputs/dayNN.txt location. The returned source names where the input
// came from, for display.
func readInput(day int, explicit string) (input, source string, err error) {
	if explicit != "" {
		data, err := os.ReadFile(explicit)
		if err != nil {
			return "", "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), explicit, nil
	}

	if stdinPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		// Uninitialized workspace: fall back to the default layout.
		cfg = config.Default()
	}

	path := cfg.InputPath(day)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("no input at %s (use --input FILE or pipe the input): %w", path, err)
	}
	return string(data), path, nil
}

// stdinPiped reports whether stdin is a pipe or file rather than a
// terminal.
func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
