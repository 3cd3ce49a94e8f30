// Package metainfo models the BitTorrent v1 metainfo document (BEP 3)
// and maps it to and from the bencode value model in internal/bencode.
package metainfo

import (
	"fmt"
	"strings"
)

// FilePath is a non-empty ordered sequence of path components. It never
// carries a platform separator — components are compared and joined
// independently of the host OS.
type FilePath []string

// NewFilePath validates and constructs a FilePath from components.
func NewFilePath(components ...string) (FilePath, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("file path must have at least one component")
	}
	for _, c := range components {
		if err := validateComponent(c); err != nil {
			return nil, err
		}
	}
	out := make(FilePath, len(components))
	copy(out, components)
	return out, nil
}

func validateComponent(c string) error {
	if c == "" {
		return fmt.Errorf("path component must not be empty")
	}
	if c == "." || c == ".." {
		return fmt.Errorf("path component must not be %q", c)
	}
	if strings.ContainsAny(c, "/\\") || strings.ContainsRune(c, 0) {
		return fmt.Errorf("path component %q contains a forbidden character", c)
	}
	return nil
}

// Compare returns -1, 0, or 1 as p sorts before, equal to, or after o,
// component-wise and lexicographically.
func (p FilePath) Compare(o FilePath) int {
	for i := 0; i < len(p) && i < len(o); i++ {
		if p[i] < o[i] {
			return -1
		}
		if p[i] > o[i] {
			return 1
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	default:
		return 0
	}
}

func (p FilePath) Equal(o FilePath) bool { return p.Compare(o) == 0 }

func (p FilePath) String() string { return strings.Join(p, "/") }

// FileInfo is one file entry of a multi-file torrent: its path relative
// to the torrent root, its length, and an optional MD5 digest. FileInfo
// is immutable once constructed.
type FileInfo struct {
	Path   FilePath
	Length int64
	MD5Sum [16]byte
	HasMD5 bool
}

// Mode tags a torrent's content shape: a single file, or a list of files
// under a shared root directory.
type Mode struct {
	single bool

	// Single mode fields.
	SingleLength int64
	SingleMD5    [16]byte
	HasSingleMD5 bool

	// Multiple mode fields.
	Files []FileInfo
}

func SingleMode(length int64) Mode {
	return Mode{single: true, SingleLength: length}
}

func MultipleMode(files []FileInfo) Mode {
	return Mode{single: false, Files: files}
}

func (m Mode) IsSingle() bool { return m.single }

// TotalLength sums the content size represented by the mode.
func (m Mode) TotalLength() int64 {
	if m.single {
		return m.SingleLength
	}
	var total int64
	for _, f := range m.Files {
		total += f.Length
	}
	return total
}

// PieceList is the flat concatenation of 20-byte SHA-1 piece digests.
type PieceList []byte

const sha1Size = 20

func (p PieceList) Count() int { return len(p) / sha1Size }

func (p PieceList) At(i int) []byte {
	return p[i*sha1Size : (i+1)*sha1Size]
}

// Info is the metainfo `info` dictionary.
type Info struct {
	Name        string
	PieceLength int64
	Pieces      PieceList
	Mode        Mode

	Private   bool
	HasSource bool
	Source    string

	// Entropy is an optional extra byte string written into the info
	// dictionary purely to perturb the info-hash for cross-seeding.
	HasEntropy bool
	Entropy    string
}

// HostPort is a DHT bootstrap node or magnet peer address: a bare
// domain/IPv4 host, or a bracketed IPv6 literal, plus a port.
type HostPort struct {
	Host string
	Port uint16
}

func (hp HostPort) String() string {
	if strings.Contains(hp.Host, ":") {
		return fmt.Sprintf("[%s]:%d", hp.Host, hp.Port)
	}
	return fmt.Sprintf("%s:%d", hp.Host, hp.Port)
}

// Metainfo is the top-level metainfo document.
type Metainfo struct {
	HasAnnounce bool
	Announce    string

	AnnounceList [][]string

	Nodes []HostPort

	HasComment bool
	Comment    string

	HasCreatedBy bool
	CreatedBy    string

	HasCreationDate bool
	CreationDate    uint64

	HasEncoding bool
	Encoding    string

	UrlList []string

	Info Info
}
