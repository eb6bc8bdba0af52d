// Package clipboard provides cross-platform clipboard support for the TUI.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		return exec.Command("xsel", "--clipboard", "--input")
	}
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks whether a clipboard tool exists on this system.
func Available() bool {
	return command().Err == nil
}
