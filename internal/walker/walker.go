// Package walker resolves a root filesystem path to an ordered FileList,
// applying symlink, hidden, junk, and glob filtering deterministically.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/torrentsmith/torrentsmith/internal/errs"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// Options configures one Walk.
type Options struct {
	IncludeHidden  bool
	IncludeJunk    bool
	FollowSymlinks bool
	Order          FileOrder
	Globs          []string
}

// Walk resolves root to an ordered FileList per the configured Options.
func Walk(root string, opts Options) (FileList, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return FileList{}, &errs.FilesystemError{Path: root, Err: err}
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !opts.FollowSymlinks {
			return FileList{}, &errs.SymlinkRootError{Path: root}
		}
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			return FileList{}, &errs.FilesystemError{Path: root, Err: err}
		}
		info, err = os.Stat(resolved)
		if err != nil {
			return FileList{}, &errs.FilesystemError{Path: resolved, Err: err}
		}
		root = resolved
	}

	if !info.IsDir() {
		entry := Entry{AbsPath: root, Path: metainfo.FilePath{}, Length: info.Size()}
		return FileList{Entries: []Entry{entry}, TotalSize: info.Size()}, nil
	}

	w := &walk{opts: opts, visited: map[string]bool{}}
	if err := w.visitDir(root, nil); err != nil {
		return FileList{}, err
	}

	opts.Order.sort(w.entries)

	var total int64
	for _, e := range w.entries {
		total += e.Length
	}
	return FileList{Entries: w.entries, TotalSize: total}, nil
}

type walk struct {
	opts    Options
	entries []Entry
	visited map[string]bool
}

// visitDir walks one directory, appending file entries in filesystem
// iteration order (final sort happens once, at the top).
func (w *walk) visitDir(absDir string, relPrefix []string) error {
	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return &errs.FilesystemError{Path: absDir, Err: err}
	}

	for _, de := range dirEntries {
		name := de.Name()
		absPath := filepath.Join(absDir, name)
		relPath := append(append([]string{}, relPrefix...), name)

		info, err := de.Info()
		if err != nil {
			return &errs.FilesystemError{Path: absPath, Err: err}
		}

		isSymlink := info.Mode()&os.ModeSymlink != 0
		targetInfo := info
		targetAbsPath := absPath
		resolvedForCycle := ""

		if isSymlink {
			if !w.opts.FollowSymlinks {
				continue
			}
			resolved, err := filepath.EvalSymlinks(absPath)
			if err != nil {
				return &errs.FilesystemError{Path: absPath, Err: err}
			}
			if w.visited[resolved] {
				return &errs.SymlinkCycleError{Path: absPath}
			}

			targetInfo, err = os.Stat(resolved)
			if err != nil {
				return &errs.FilesystemError{Path: resolved, Err: err}
			}
			targetAbsPath = resolved
			resolvedForCycle = resolved
		}

		hidden, err := isHidden(name, absPath, info)
		if err != nil {
			return &errs.FilesystemError{Path: absPath, Err: err}
		}
		if hidden && !w.opts.IncludeHidden {
			continue
		}

		if targetInfo.IsDir() {
			if resolvedForCycle != "" {
				w.visited[resolvedForCycle] = true
			}
			err := w.visitDir(targetAbsPath, relPath)
			if resolvedForCycle != "" {
				delete(w.visited, resolvedForCycle)
			}
			if err != nil {
				return err
			}
			continue
		}

		if isJunk(name) && !w.opts.IncludeJunk {
			continue
		}

		if !targetInfo.Mode().IsRegular() {
			continue
		}

		relSlash := strings.Join(relPath, "/")
		if !globInclude(relSlash, w.opts.Globs) {
			continue
		}

		fp, err := metainfo.NewFilePath(relPath...)
		if err != nil {
			return &errs.FilesystemError{Path: absPath, Err: err}
		}
		w.entries = append(w.entries, Entry{
			AbsPath: targetAbsPath,
			Path:    fp,
			Length:  targetInfo.Size(),
		})
	}
	return nil
}

// isHidden reports whether name/path is hidden by the shared dotfile
// convention or a platform-specific attribute.
func isHidden(name, path string, info fs.FileInfo) (bool, error) {
	if strings.HasPrefix(name, ".") {
		return true, nil
	}
	return platformHidden(path, info)
}

// globInclude applies the CLI-ordered sequence of inclusion/exclusion
// globs to one root-relative path, per §4.1: if any inclusion glob is
// present the default disposition is exclude, otherwise include; each
// glob flips the disposition of entries it matches, in CLI order.
func globInclude(relSlash string, globs []string) bool {
	hasInclusion := false
	for _, g := range globs {
		if !strings.HasPrefix(g, "!") {
			hasInclusion = true
			break
		}
	}

	disposition := !hasInclusion

	for _, g := range globs {
		pattern := g
		exclude := strings.HasPrefix(g, "!")
		if exclude {
			pattern = g[1:]
		}
		matched, _ := doublestar.Match(pattern, relSlash)
		if matched {
			disposition = !exclude
		}
	}
	return disposition
}
