package metainfo

import (
	"crypto/sha1"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePathValidation(t *testing.T) {
	_, err := NewFilePath()
	require.Error(t, err)

	_, err = NewFilePath("a", "")
	require.Error(t, err)

	_, err = NewFilePath("a", ".")
	require.Error(t, err)

	_, err = NewFilePath("a", "..")
	require.Error(t, err)

	_, err = NewFilePath("a/b")
	require.Error(t, err)

	_, err = NewFilePath("a\\b")
	require.Error(t, err)

	p, err := NewFilePath("dir", "file.txt")
	require.NoError(t, err)
	assert.Equal(t, "dir/file.txt", p.String())
}

func TestFilePathCompare(t *testing.T) {
	a, _ := NewFilePath("a")
	b, _ := NewFilePath("b")
	ab, _ := NewFilePath("a", "b")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(ab))
}

func TestSingleFileEmptyContent(t *testing.T) {
	info := Info{
		Name:        "foo",
		PieceLength: 16 << 10,
		Mode:        SingleMode(0),
	}
	assert.True(t, info.Mode.IsSingle())
	assert.Equal(t, int64(0), info.Mode.TotalLength())
	assert.Equal(t, 0, info.Pieces.Count())
}

func TestEmptyDirectoryMultiMode(t *testing.T) {
	info := Info{Name: "foo", PieceLength: 16 << 10, Mode: MultipleMode(nil)}
	assert.False(t, info.Mode.IsSingle())
	assert.Equal(t, int64(0), info.Mode.TotalLength())
}

func TestWireRoundTrip(t *testing.T) {
	pA, _ := NewFilePath("a")
	pH, _ := NewFilePath("h")
	files := []FileInfo{
		{Path: pA, Length: 3},
		{Path: pH, Length: 3},
	}
	m := Metainfo{
		HasAnnounce: true,
		Announce:    "http://bar/",
		HasEncoding: true,
		Encoding:    "UTF-8",
		Info: Info{
			Name:        "foo",
			PieceLength: 16 << 10,
			Pieces:      make(PieceList, 20),
			Mode:        MultipleMode(files),
		},
	}

	encoded := m.Serialize()
	decoded, err := Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
	assert.Equal(t, encoded, decoded.Serialize())
}

func TestInfoHashMatchesInfoByteRange(t *testing.T) {
	info := Info{
		Name:        "foo",
		PieceLength: 16 << 10,
		Pieces:      make(PieceList, 20),
		Mode:        SingleMode(0),
	}
	m := Metainfo{HasAnnounce: true, Announce: "http://bar/", Info: info}

	full := m.Serialize()
	infoBytes := info.ToBencodeBytes()

	// the info dictionary's bencoded bytes must appear verbatim inside the
	// full document, and the info-hash is the SHA-1 of exactly those bytes.
	assert.Contains(t, string(full), string(infoBytes))
	assert.Equal(t, InfoHash(sha1.Sum(infoBytes)), info.HashInfo())
}

func TestOptionalFieldsOmittedWhenAbsent(t *testing.T) {
	info := Info{Name: "x", PieceLength: 16 << 10, Mode: SingleMode(0)}
	encoded := string(info.ToBencodeBytes())
	assert.NotContains(t, encoded, "private")
	assert.NotContains(t, encoded, "source")
	assert.NotContains(t, encoded, "md5sum")
}

func TestPrivateFlagEncodedAsOne(t *testing.T) {
	info := Info{Name: "x", PieceLength: 16 << 10, Mode: SingleMode(0), Private: true}
	encoded := string(info.ToBencodeBytes())
	assert.Contains(t, encoded, "7:privatei1e")
}

func TestDictKeysAscendingByteOrder(t *testing.T) {
	pA, _ := NewFilePath("a")
	info := Info{
		Name:        "z",
		PieceLength: 16 << 10,
		Mode:        MultipleMode([]FileInfo{{Path: pA, Length: 1}}),
		Private:     true,
		HasSource:   true,
		Source:      "X",
	}
	encoded := info.ToBencodeBytes()
	// keys in order: files, name, piece length, pieces, private, source
	assertKeyOrder(t, string(encoded), []string{"files", "name", "piece length", "pieces", "private", "source"})
}

func assertKeyOrder(t *testing.T, encoded string, keys []string) {
	t.Helper()
	lastIdx := -1
	for _, k := range keys {
		marker := strconv.Itoa(len(k)) + ":" + k
		idx := strings.Index(encoded, marker)
		if idx < 0 {
			t.Fatalf("key %q not found in %q", k, encoded)
		}
		if idx <= lastIdx {
			t.Fatalf("key %q out of order", k)
		}
		lastIdx = idx
	}
}
