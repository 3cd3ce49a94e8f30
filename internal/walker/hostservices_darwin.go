//go:build darwin

package walker

import (
	"os"
	"syscall"
)

// platformHidden reports the BSD UF_HIDDEN flag macOS sets on Finder-hidden
// entries, independent of the dotfile naming convention.
func platformHidden(path string, info os.FileInfo) (bool, error) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false, nil
	}
	return sys.Flags&syscall.UF_HIDDEN != 0, nil
}
