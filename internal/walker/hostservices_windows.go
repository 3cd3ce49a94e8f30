//go:build windows

package walker

import (
	"os"

	"golang.org/x/sys/windows"
)

// platformHidden reports the FILE_ATTRIBUTE_HIDDEN bit Windows Explorer
// uses, independent of the dotfile naming convention.
func platformHidden(path string, info os.FileInfo) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
