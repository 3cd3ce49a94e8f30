package metainfo

import (
	"fmt"

	"github.com/torrentsmith/torrentsmith/internal/bencode"
)

// ToBencode builds the bencode.Value tree for the metainfo document. Key
// names and presence rules follow BEP 3/12/27 exactly: optional fields
// are omitted rather than written as empty or null, per spec.
func (m Metainfo) ToBencode() bencode.Value {
	b := bencode.NewDictBuilder()

	if m.HasAnnounce {
		b.Set("announce", bencode.String(m.Announce))
	}
	if len(m.AnnounceList) > 0 {
		tiers := make([]bencode.Value, len(m.AnnounceList))
		for i, tier := range m.AnnounceList {
			urls := make([]bencode.Value, len(tier))
			for j, u := range tier {
				urls[j] = bencode.String(u)
			}
			tiers[i] = bencode.List(urls...)
		}
		b.Set("announce-list", bencode.List(tiers...))
	}
	if m.HasComment {
		b.Set("comment", bencode.String(m.Comment))
	}
	if m.HasCreatedBy {
		b.Set("created by", bencode.String(m.CreatedBy))
	}
	if m.HasCreationDate {
		b.Set("creation date", bencode.Int(int64(m.CreationDate)))
	}
	if m.HasEncoding {
		b.Set("encoding", bencode.String(m.Encoding))
	}
	if len(m.Nodes) > 0 {
		nodes := make([]bencode.Value, len(m.Nodes))
		for i, n := range m.Nodes {
			nodes[i] = bencode.List(bencode.String(n.Host), bencode.Int(int64(n.Port)))
		}
		b.Set("nodes", bencode.List(nodes...))
	}
	if len(m.UrlList) > 0 {
		seeds := make([]bencode.Value, len(m.UrlList))
		for i, u := range m.UrlList {
			seeds[i] = bencode.String(u)
		}
		b.Set("url-list", bencode.List(seeds...))
	}
	b.Set("info", m.Info.ToBencode())

	return b.Build()
}

// ToBencode builds the bencode.Value tree for the info dictionary alone
// — this is the exact byte range hashed to produce the info-hash.
func (info Info) ToBencode() bencode.Value {
	b := bencode.NewDictBuilder()

	if info.Mode.IsSingle() {
		b.Set("length", bencode.Int(info.Mode.SingleLength))
		if info.Mode.HasSingleMD5 {
			b.Set("md5sum", bencode.String(fmt.Sprintf("%x", info.Mode.SingleMD5)))
		}
	} else {
		files := make([]bencode.Value, len(info.Mode.Files))
		for i, f := range info.Mode.Files {
			fb := bencode.NewDictBuilder()
			fb.Set("length", bencode.Int(f.Length))
			if f.HasMD5 {
				fb.Set("md5sum", bencode.String(fmt.Sprintf("%x", f.MD5Sum)))
			}
			components := make([]bencode.Value, len(f.Path))
			for j, c := range f.Path {
				components[j] = bencode.String(c)
			}
			fb.Set("path", bencode.List(components...))
			files[i] = fb.Build()
		}
		b.Set("files", bencode.List(files...))
	}

	b.Set("name", bencode.String(info.Name))
	b.Set("piece length", bencode.Int(info.PieceLength))
	b.Set("pieces", bencode.Bytes([]byte(info.Pieces)))

	if info.Private {
		b.Set("private", bencode.Int(1))
	}
	if info.HasSource {
		b.Set("source", bencode.String(info.Source))
	}
	if info.HasEntropy {
		b.Set("entropy", bencode.String(info.Entropy))
	}

	return b.Build()
}

// Serialize encodes the full metainfo document to canonical bencode.
func (m Metainfo) Serialize() []byte {
	return bencode.Encode(m.ToBencode())
}

// ToBencodeBytes encodes just the info dictionary, the same byte range
// InfoHash hashes.
func (info Info) ToBencodeBytes() []byte {
	return bencode.Encode(info.ToBencode())
}
