package metainfo

import (
	"encoding/hex"
	"fmt"

	"github.com/torrentsmith/torrentsmith/internal/bencode"
)

// Parse decodes a canonical metainfo byte stream back into a Metainfo.
// It is the inverse of Serialize, used to check the round-trip property
// required by spec: encode(parse(encode(m))) == encode(m).
func Parse(data []byte) (Metainfo, error) {
	v, err := bencode.DecodeAll(data)
	if err != nil {
		return Metainfo{}, err
	}
	if v.Kind != bencode.KindDict {
		return Metainfo{}, fmt.Errorf("metainfo: top-level value is not a dictionary")
	}
	return fromBencode(v.Dict)
}

func fromBencode(d map[string]bencode.Value) (Metainfo, error) {
	var m Metainfo

	if v, ok := d["announce"]; ok {
		s, err := asString(v, "announce")
		if err != nil {
			return m, err
		}
		m.HasAnnounce, m.Announce = true, s
	}
	if v, ok := d["announce-list"]; ok {
		if v.Kind != bencode.KindList {
			return m, fmt.Errorf("metainfo: announce-list must be a list")
		}
		for _, tierVal := range v.List {
			if tierVal.Kind != bencode.KindList {
				return m, fmt.Errorf("metainfo: announce-list tier must be a list")
			}
			var tier []string
			for _, u := range tierVal.List {
				s, err := asString(u, "announce-list entry")
				if err != nil {
					return m, err
				}
				tier = append(tier, s)
			}
			m.AnnounceList = append(m.AnnounceList, tier)
		}
	}
	if v, ok := d["comment"]; ok {
		s, err := asString(v, "comment")
		if err != nil {
			return m, err
		}
		m.HasComment, m.Comment = true, s
	}
	if v, ok := d["created by"]; ok {
		s, err := asString(v, "created by")
		if err != nil {
			return m, err
		}
		m.HasCreatedBy, m.CreatedBy = true, s
	}
	if v, ok := d["creation date"]; ok {
		if v.Kind != bencode.KindInt {
			return m, fmt.Errorf("metainfo: creation date must be an integer")
		}
		m.HasCreationDate, m.CreationDate = true, uint64(v.Int)
	}
	if v, ok := d["encoding"]; ok {
		s, err := asString(v, "encoding")
		if err != nil {
			return m, err
		}
		m.HasEncoding, m.Encoding = true, s
	}
	if v, ok := d["nodes"]; ok {
		if v.Kind != bencode.KindList {
			return m, fmt.Errorf("metainfo: nodes must be a list")
		}
		for _, nodeVal := range v.List {
			if nodeVal.Kind != bencode.KindList || len(nodeVal.List) != 2 {
				return m, fmt.Errorf("metainfo: node must be a 2-element list")
			}
			host, err := asString(nodeVal.List[0], "node host")
			if err != nil {
				return m, err
			}
			if nodeVal.List[1].Kind != bencode.KindInt {
				return m, fmt.Errorf("metainfo: node port must be an integer")
			}
			m.Nodes = append(m.Nodes, HostPort{Host: host, Port: uint16(nodeVal.List[1].Int)})
		}
	}
	if v, ok := d["url-list"]; ok {
		if v.Kind != bencode.KindList {
			return m, fmt.Errorf("metainfo: url-list must be a list")
		}
		for _, u := range v.List {
			s, err := asString(u, "url-list entry")
			if err != nil {
				return m, err
			}
			m.UrlList = append(m.UrlList, s)
		}
	}

	infoVal, ok := d["info"]
	if !ok {
		return m, fmt.Errorf("metainfo: missing required key %q", "info")
	}
	if infoVal.Kind != bencode.KindDict {
		return m, fmt.Errorf("metainfo: info must be a dictionary")
	}
	info, err := infoFromBencode(infoVal.Dict)
	if err != nil {
		return m, err
	}
	m.Info = info

	return m, nil
}

func infoFromBencode(d map[string]bencode.Value) (Info, error) {
	var info Info

	name, err := asString(d["name"], "name")
	if err != nil {
		return info, err
	}
	info.Name = name

	pieceLenVal, ok := d["piece length"]
	if !ok || pieceLenVal.Kind != bencode.KindInt {
		return info, fmt.Errorf("metainfo: missing or invalid %q", "piece length")
	}
	info.PieceLength = pieceLenVal.Int

	piecesVal, ok := d["pieces"]
	if !ok || piecesVal.Kind != bencode.KindBytes {
		return info, fmt.Errorf("metainfo: missing or invalid %q", "pieces")
	}
	if len(piecesVal.Bytes)%sha1Size != 0 {
		return info, fmt.Errorf("metainfo: pieces length %d is not a multiple of %d", len(piecesVal.Bytes), sha1Size)
	}
	info.Pieces = PieceList(piecesVal.Bytes)

	if v, ok := d["private"]; ok {
		if v.Kind != bencode.KindInt {
			return info, fmt.Errorf("metainfo: private must be an integer")
		}
		info.Private = v.Int == 1
	}
	if v, ok := d["source"]; ok {
		s, err := asString(v, "source")
		if err != nil {
			return info, err
		}
		info.HasSource, info.Source = true, s
	}
	if v, ok := d["entropy"]; ok {
		s, err := asString(v, "entropy")
		if err != nil {
			return info, err
		}
		info.HasEntropy, info.Entropy = true, s
	}

	if filesVal, ok := d["files"]; ok {
		if filesVal.Kind != bencode.KindList {
			return info, fmt.Errorf("metainfo: files must be a list")
		}
		files := make([]FileInfo, 0, len(filesVal.List))
		for _, fv := range filesVal.List {
			if fv.Kind != bencode.KindDict {
				return info, fmt.Errorf("metainfo: file entry must be a dictionary")
			}
			f, err := fileInfoFromBencode(fv.Dict)
			if err != nil {
				return info, err
			}
			files = append(files, f)
		}
		info.Mode = MultipleMode(files)
	} else {
		lengthVal, ok := d["length"]
		if !ok || lengthVal.Kind != bencode.KindInt {
			return info, fmt.Errorf("metainfo: single-file info must have %q", "length")
		}
		mode := SingleMode(lengthVal.Int)
		if v, ok := d["md5sum"]; ok {
			s, err := asString(v, "md5sum")
			if err != nil {
				return info, err
			}
			digest, err := decodeMD5(s)
			if err != nil {
				return info, err
			}
			mode.HasSingleMD5, mode.SingleMD5 = true, digest
		}
		info.Mode = mode
	}

	return info, nil
}

func fileInfoFromBencode(d map[string]bencode.Value) (FileInfo, error) {
	var f FileInfo

	lengthVal, ok := d["length"]
	if !ok || lengthVal.Kind != bencode.KindInt {
		return f, fmt.Errorf("metainfo: file entry missing %q", "length")
	}
	f.Length = lengthVal.Int

	pathVal, ok := d["path"]
	if !ok || pathVal.Kind != bencode.KindList || len(pathVal.List) == 0 {
		return f, fmt.Errorf("metainfo: file entry missing non-empty %q", "path")
	}
	components := make([]string, len(pathVal.List))
	for i, c := range pathVal.List {
		s, err := asString(c, "path component")
		if err != nil {
			return f, err
		}
		components[i] = s
	}
	path, err := NewFilePath(components...)
	if err != nil {
		return f, fmt.Errorf("metainfo: invalid file path: %w", err)
	}
	f.Path = path

	if v, ok := d["md5sum"]; ok {
		s, err := asString(v, "md5sum")
		if err != nil {
			return f, err
		}
		digest, err := decodeMD5(s)
		if err != nil {
			return f, err
		}
		f.HasMD5, f.MD5Sum = true, digest
	}

	return f, nil
}

func asString(v bencode.Value, field string) (string, error) {
	if v.Kind != bencode.KindBytes {
		return "", fmt.Errorf("metainfo: %s must be a byte-string", field)
	}
	return string(v.Bytes), nil
}

func decodeMD5(s string) ([16]byte, error) {
	var digest [16]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 16 {
		return digest, fmt.Errorf("metainfo: invalid md5sum %q", s)
	}
	copy(digest[:], raw)
	return digest, nil
}
