package walker

import (
	"sort"

	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// FileOrder selects how a directory's FileList is sorted.
type FileOrder int

const (
	AlphabeticalAsc FileOrder = iota
	AlphabeticalDesc
	SizeAsc
	SizeDesc
)

var orderNames = map[string]FileOrder{
	"alphabetical-asc":  AlphabeticalAsc,
	"alphabetical-desc": AlphabeticalDesc,
	"size-asc":          SizeAsc,
	"size-desc":         SizeDesc,
}

// ParseFileOrder resolves a CLI --order value.
func ParseFileOrder(s string) (FileOrder, bool) {
	o, ok := orderNames[s]
	return o, ok
}

func (o FileOrder) sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return less(o, entries[i], entries[j])
	})
}

func less(o FileOrder, a, b Entry) bool {
	switch o {
	case AlphabeticalAsc:
		return a.Path.Compare(b.Path) < 0
	case AlphabeticalDesc:
		return a.Path.Compare(b.Path) > 0
	case SizeAsc:
		if a.Length != b.Length {
			return a.Length < b.Length
		}
		return a.Path.Compare(b.Path) < 0
	case SizeDesc:
		if a.Length != b.Length {
			return a.Length > b.Length
		}
		return a.Path.Compare(b.Path) < 0
	default:
		return a.Path.Compare(b.Path) < 0
	}
}

// Entry is one file discovered by the Walker.
type Entry struct {
	AbsPath string
	Path    metainfo.FilePath
	Length  int64
}

// FileList is the Walker's ordered output.
type FileList struct {
	Entries   []Entry
	TotalSize int64
}
