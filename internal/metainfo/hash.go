package metainfo

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/torrentsmith/torrentsmith/internal/bencode"
)

// InfoHash is the 20-byte SHA-1 digest of the bencoded info dictionary —
// the identifier BitTorrent uses for this torrent across the network.
type InfoHash [20]byte

func (h InfoHash) String() string { return hex.EncodeToString(h[:]) }

// HashInfo computes the info-hash. Because ToBencode always emits a
// canonical, sorted-key encoding, this is stable across runs given an
// equal Info value, and matches the hash computed from the info range
// of a full Serialize()d metainfo document.
func (info Info) HashInfo() InfoHash {
	return sha1.Sum(bencode.Encode(info.ToBencode()))
}
