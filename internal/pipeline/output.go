package pipeline

import (
	"os"
	"path/filepath"

	"github.com/torrentsmith/torrentsmith/internal/errs"
)

// OutputTarget is a closed sum type: either a file destination or stdout.
type OutputTarget struct {
	stdout bool
	path   string
}

// FileTarget targets a path on disk.
func FileTarget(path string) OutputTarget { return OutputTarget{path: path} }

// StdoutTarget targets the process's standard output.
func StdoutTarget() OutputTarget { return OutputTarget{stdout: true} }

// IsStdout reports whether the target is stdout rather than a file.
func (t OutputTarget) IsStdout() bool { return t.stdout }

// Path returns the file path, valid only when !IsStdout().
func (t OutputTarget) Path() string { return t.path }

// DefaultOutputPath computes `$INPUT.torrent` alongside the input, per
// §6's default when -o is not given.
func DefaultOutputPath(inputPath string) string {
	clean := filepath.Clean(inputPath)
	return clean + ".torrent"
}

// ResolveOutputTarget interprets the raw -o flag value: "-" means stdout,
// "" means the default path alongside the input, anything else is used
// verbatim.
func ResolveOutputTarget(raw, inputPath string) OutputTarget {
	switch raw {
	case "-":
		return StdoutTarget()
	case "":
		return FileTarget(DefaultOutputPath(inputPath))
	default:
		return FileTarget(raw)
	}
}

// Write delivers data to target. File targets use create-new semantics
// unless force is set (in which case the file is truncated); stdout
// writes the raw bytes with no trailing newline. Writes happen only
// after data is fully assembled in memory, so no partial metainfo is
// ever visible on success.
func Write(target OutputTarget, data []byte, force bool) error {
	if target.IsStdout() {
		if _, err := os.Stdout.Write(data); err != nil {
			return &errs.StdoutError{Err: err}
		}
		return nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(target.path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &errs.OutputExistsError{Path: target.path}
		}
		return &errs.FilesystemError{Path: target.path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return &errs.FilesystemError{Path: target.path, Err: err}
	}
	return nil
}
