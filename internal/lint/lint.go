// Package lint implements the allow/deny gate for "unusual-but-legal"
// torrent configurations: checks that are denied by default and can be
// selectively allowed at the CLI with --allow.
package lint

import (
	"fmt"
	"strings"
)

// Kind is a closed set of lint identifiers.
type Kind int

const (
	SmallPieceLength Kind = iota
	UnevenPieceLength
	PrivateTrackerless
)

var names = map[Kind]string{
	SmallPieceLength:   "small-piece-length",
	UnevenPieceLength:  "uneven-piece-length",
	PrivateTrackerless: "private-trackerless",
}

// All is the complete, ordered set of recognized lint kinds.
var All = []Kind{SmallPieceLength, UnevenPieceLength, PrivateTrackerless}

func (k Kind) String() string { return names[k] }

// Parse resolves a case-insensitive lint name to its Kind.
func Parse(name string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, n := range names {
		if n == lower {
			return k, nil
		}
	}
	return 0, fmt.Errorf("lint: unrecognized lint name %q", name)
}

// Set tracks which lints have been explicitly allowed. The zero value
// denies every lint, matching spec's "denied by default" rule.
type Set struct {
	allowed map[Kind]bool
}

func NewSet() *Set { return &Set{allowed: make(map[Kind]bool)} }

func (s *Set) Allow(k Kind) { s.allowed[k] = true }

func (s *Set) IsAllowed(k Kind) bool { return s != nil && s.allowed[k] }

func (s *Set) IsDenied(k Kind) bool { return !s.IsAllowed(k) }
