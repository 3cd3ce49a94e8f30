//go:build !windows && !darwin

package walker

import "os"

// platformHidden reports OS-attribute-based hiddenness beyond the dotfile
// convention every platform shares. Plain Unix (Linux, *BSD) has no such
// attribute bit, so this is always false here; darwin and windows have
// their own implementations in hostservices_darwin.go / _windows.go.
func platformHidden(path string, info os.FileInfo) (bool, error) {
	return false, nil
}

// Symlink detection and resolution are not split per platform: walker.go
// uses os.Lstat and filepath.EvalSymlinks everywhere.
