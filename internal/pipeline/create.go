package pipeline

import (
	"errors"
	"net/url"
	"path/filepath"
	"time"

	"github.com/torrentsmith/torrentsmith/internal/buildinfo"
	"github.com/torrentsmith/torrentsmith/internal/errs"
	"github.com/torrentsmith/torrentsmith/internal/hasher"
	"github.com/torrentsmith/torrentsmith/internal/lint"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
	"github.com/torrentsmith/torrentsmith/internal/piecelen"
	"github.com/torrentsmith/torrentsmith/internal/walker"
)

// Result is what one successful Create run produces.
type Result struct {
	Metainfo metainfo.Metainfo
	InfoHash metainfo.InfoHash
	Bytes    []byte
}

// progressAdapter bridges hasher.ProgressSink to the pipeline-level
// Progress interface, which additionally knows the run's total size.
type progressAdapter struct{ p Progress }

func (a progressAdapter) OnBytes(total int64) {
	if a.p != nil {
		a.p.Update(total)
	}
}

// Create runs the full Walker -> Linter -> Hasher -> Metainfo pipeline
// over opts and returns the assembled, serialized result. No bytes are
// written to any sink; callers decide where Result.Bytes goes.
func Create(opts CreateOptions) (Result, error) {
	fl, err := walker.Walk(opts.Path, walker.Options{
		IncludeHidden:  opts.IncludeHidden,
		IncludeJunk:    opts.IncludeJunk,
		FollowSymlinks: opts.FollowSymlinks,
		Order:          opts.Order,
		Globs:          opts.Globs,
	})
	if err != nil {
		return Result{}, err
	}

	pieceLength := opts.PieceLength
	if pieceLength == 0 {
		pieceLength = piecelen.Pick(fl.TotalSize)
	}
	if pieceLength <= 0 {
		return Result{}, &errs.PieceLengthZeroError{}
	}

	if err := lintPieceLength(pieceLength, opts.Allow); err != nil {
		return Result{}, err
	}
	if opts.Private && opts.Announce == "" {
		if opts.Allow.IsDenied(lint.PrivateTrackerless) {
			return Result{}, &errs.PrivateTrackerlessError{}
		}
	}

	name := opts.Name
	if name == "" {
		name, err = deriveName(opts.Path)
		if err != nil {
			return Result{}, err
		}
	}

	if opts.Progress != nil {
		opts.Progress.Start(fl.TotalSize)
	}

	hashResult, err := hasher.Hash(fl, hasher.Options{
		PieceLength: pieceLength,
		MD5:         opts.MD5,
		Progress:    progressAdapter{opts.Progress},
	})
	if err != nil {
		return Result{}, err
	}

	if opts.Progress != nil {
		opts.Progress.Finish()
	}

	info := metainfo.Info{
		Name:        name,
		PieceLength: pieceLength,
		Pieces:      hashResult.Pieces,
		Mode:        hashResult.Mode,
		Private:     opts.Private,
	}
	if opts.Source != "" {
		info.HasSource = true
		info.Source = opts.Source
	}
	if opts.Entropy {
		e, err := randomEntropy()
		if err != nil {
			return Result{}, err
		}
		info.HasEntropy = true
		info.Entropy = e
	}

	mi := metainfo.Metainfo{Info: info, UrlList: opts.WebSeeds}

	if opts.Announce != "" {
		normalized, err := normalizeAnnounceURL(opts.Announce)
		if err != nil {
			return Result{}, err
		}
		mi.HasAnnounce = true
		mi.Announce = normalized
	}
	if len(opts.AnnounceList) > 0 {
		for _, tier := range opts.AnnounceList {
			for _, raw := range tier {
				if _, err := normalizeAnnounceURL(raw); err != nil {
					return Result{}, err
				}
			}
		}
		mi.AnnounceList = opts.AnnounceList
		if !mi.HasAnnounce && len(opts.AnnounceList[0]) > 0 {
			mi.HasAnnounce = true
			mi.Announce = opts.AnnounceList[0][0]
		}
	}
	if opts.Comment != "" {
		mi.HasComment = true
		mi.Comment = opts.Comment
	}
	if len(opts.Nodes) > 0 {
		mi.Nodes = opts.Nodes
	}
	if !opts.NoCreatedBy {
		mi.HasCreatedBy = true
		mi.CreatedBy = buildinfo.CreatedBy()
	}
	if !opts.NoCreationDate {
		mi.HasCreationDate = true
		mi.CreationDate = uint64(time.Now().Unix())
	}
	mi.HasEncoding = true
	mi.Encoding = "UTF-8"

	bytes := mi.Serialize()

	return Result{
		Metainfo: mi,
		InfoHash: info.HashInfo(),
		Bytes:    bytes,
	}, nil
}

func lintPieceLength(pieceLength int64, allow *lint.Set) error {
	if pieceLength < piecelen.Min {
		if allow.IsDenied(lint.SmallPieceLength) {
			return &errs.PieceLengthLintError{Lint: lint.SmallPieceLength.String(), PieceLength: pieceLength}
		}
	}
	if pieceLength&(pieceLength-1) != 0 {
		if allow.IsDenied(lint.UnevenPieceLength) {
			return &errs.PieceLengthLintError{Lint: lint.UnevenPieceLength.String(), PieceLength: pieceLength}
		}
	}
	return nil
}

// normalizeAnnounceURL parses raw as a URL and returns its normalized
// string form (e.g. "http://bar" -> "http://bar/"), matching how a tracker
// URL round-trips through a proper URL type rather than being stored
// verbatim.
func normalizeAnnounceURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "" || u.Host == "") {
		err = errors.New("missing scheme or host")
	}
	if err != nil {
		return "", &errs.AnnounceURLParseError{URL: raw, Err: err}
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

func deriveName(path string) (string, error) {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", &errs.FilenameExtractError{Path: path}
	}
	return base, nil
}
