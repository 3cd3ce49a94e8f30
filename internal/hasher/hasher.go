// Package hasher streams a walker.FileList through a fixed piece window,
// producing the SHA-1 piece digests and, optionally, per-file MD5 sums.
// Hashing is single-threaded and synchronous: one SHA-1 context straddles
// file boundaries so that two runs over identical content always produce
// byte-identical pieces, independent of CPU count or scheduling.
package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"io"
	"os"

	"github.com/torrentsmith/torrentsmith/internal/errs"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
	"github.com/torrentsmith/torrentsmith/internal/walker"
)

const bufSize = 1 << 20

// ProgressSink receives a running byte count as the hasher consumes file
// content. Implementations must not block; the hasher invokes it inline
// after every buffer read, on the same goroutine that calls Hash.
type ProgressSink interface {
	OnBytes(total int64)
}

// Options configures one hashing pass.
type Options struct {
	PieceLength int64
	MD5         bool
	Progress    ProgressSink
}

// Result is the hasher's output: the content Mode (carrying any computed
// MD5 sums) and the flat SHA-1 PieceList.
type Result struct {
	Mode   metainfo.Mode
	Pieces metainfo.PieceList
}

// Hash streams fl through opts.PieceLength, returning the resulting Mode
// and PieceList. A FileList of exactly one entry with an empty Path is a
// single-file root; anything else is treated as multi-file.
func Hash(fl walker.FileList, opts Options) (Result, error) {
	if opts.PieceLength <= 0 {
		return Result{}, &errs.PieceLengthZeroError{}
	}

	single := len(fl.Entries) == 1 && len(fl.Entries[0].Path) == 0

	sha := sha1.New()
	var pieces metainfo.PieceList
	var c int64

	files := make([]metainfo.FileInfo, len(fl.Entries))

	for i, entry := range fl.Entries {
		var md5h hash.Hash
		if opts.MD5 {
			md5h = md5.New()
		}

		if err := hashFile(entry.AbsPath, sha, md5h, opts.PieceLength, &c, &pieces, opts.Progress); err != nil {
			return Result{}, err
		}

		fi := metainfo.FileInfo{Path: entry.Path, Length: entry.Length}
		if opts.MD5 {
			var sum [16]byte
			copy(sum[:], md5h.Sum(nil))
			fi.MD5Sum = sum
			fi.HasMD5 = true
		}
		files[i] = fi
	}

	if c > 0 && c%opts.PieceLength != 0 {
		pieces = append(pieces, sha.Sum(nil)...)
	}

	var mode metainfo.Mode
	if single {
		mode = metainfo.SingleMode(c)
		if len(files) == 1 && files[0].HasMD5 {
			mode.SingleMD5 = files[0].MD5Sum
			mode.HasSingleMD5 = true
		}
	} else {
		mode = metainfo.MultipleMode(files)
	}

	return Result{Mode: mode, Pieces: pieces}, nil
}

// hashFile feeds one file's bytes into the running SHA-1 piece context and
// an optional per-file MD5 context, finalizing and appending a piece
// digest each time the byte counter crosses a piece boundary.
func hashFile(path string, sha hash.Hash, md5h hash.Hash, pieceLength int64, c *int64, pieces *metainfo.PieceList, progress ProgressSink) error {
	f, err := os.Open(path)
	if err != nil {
		return &errs.FilesystemError{Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, bufSize)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			feedChunk(sha, chunk, pieceLength, c, pieces)
			if md5h != nil {
				md5h.Write(chunk)
			}
			if progress != nil {
				progress.OnBytes(*c)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return &errs.FilesystemError{Path: path, Err: readErr}
		}
	}
	return nil
}

// feedChunk writes chunk into sha, splitting at every piece boundary it
// crosses: a boundary finalizes and appends a digest, then sha is reset
// and fed the remainder.
func feedChunk(sha hash.Hash, chunk []byte, pieceLength int64, c *int64, pieces *metainfo.PieceList) {
	for len(chunk) > 0 {
		remaining := pieceLength - (*c % pieceLength)
		n := int64(len(chunk))
		if n > remaining {
			n = remaining
		}
		sha.Write(chunk[:n])
		*c += n
		chunk = chunk[n:]

		if *c%pieceLength == 0 {
			*pieces = append(*pieces, sha.Sum(nil)...)
			sha.Reset()
		}
	}
}
