package cmd

import (
	"os/exec"
	"runtime"
)

// openWithHostOpener launches the platform's default handler for path.
// Failures are silent: -O is a convenience, not a correctness requirement.
func openWithHostOpener(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
