// Package pipeline wires Walker, Linter, PieceLengthPicker, Hasher, and
// the metainfo/bencode model into the single `create` data flow: root
// path + options -> FileList -> (Mode, PieceList) -> Metainfo -> bytes.
package pipeline

import (
	"github.com/torrentsmith/torrentsmith/internal/lint"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
	"github.com/torrentsmith/torrentsmith/internal/walker"
)

// CreateOptions holds every user-controllable knob for one `create` run.
type CreateOptions struct {
	Path string
	Name string

	Announce     string
	AnnounceList [][]string
	Nodes        []metainfo.HostPort
	Comment      string
	WebSeeds     []string

	PieceLength int64 // 0 selects the PieceLengthPicker default

	Private bool
	Source  string

	NoCreatedBy    bool
	NoCreationDate bool
	Entropy        bool

	MD5 bool

	FollowSymlinks bool
	IncludeHidden  bool
	IncludeJunk    bool
	Order          walker.FileOrder
	Globs          []string

	Allow *lint.Set

	Progress Progress
}

// Progress is the pipeline-level progress sink, reporting bytes hashed
// against the total content size known ahead of time.
type Progress interface {
	Start(totalBytes int64)
	Update(bytesDone int64)
	Finish()
}
