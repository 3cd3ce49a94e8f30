package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrentsmith/torrentsmith/internal/errs"
	"github.com/torrentsmith/torrentsmith/internal/lint"
	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCreateSingleEmptyFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "")

	res, err := Create(CreateOptions{
		Path:           f,
		Announce:       "http://bar",
		NoCreatedBy:    true,
		NoCreationDate: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "foo", res.Metainfo.Info.Name)
	assert.True(t, res.Metainfo.Info.Mode.IsSingle())
	assert.Equal(t, int64(0), res.Metainfo.Info.Mode.SingleLength)
	assert.Equal(t, 0, res.Metainfo.Info.Pieces.Count())
	assert.Equal(t, int64(16*1024), res.Metainfo.Info.PieceLength)
	assert.Equal(t, "http://bar/", res.Metainfo.Announce)
	assert.Empty(t, res.Metainfo.AnnounceList)
}

func TestCreateTieredAnnounce(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "x")

	res, err := Create(CreateOptions{
		Path:     f,
		Announce: "http://bar",
		AnnounceList: [][]string{
			{"http://bar", "http://baz"},
			{"http://abc", "http://xyz"},
		},
		NoCreatedBy:    true,
		NoCreationDate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://bar/", res.Metainfo.Announce)
	assert.Equal(t, [][]string{{"http://bar", "http://baz"}, {"http://abc", "http://xyz"}}, res.Metainfo.AnnounceList)
}

func TestCreateRejectsInvalidAnnounceTierEntry(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "x")

	_, err := Create(CreateOptions{
		Path:         f,
		AnnounceList: [][]string{{"bar", "http://baz"}},
	})
	require.Error(t, err)
	assert.IsType(t, &errs.AnnounceURLParseError{}, err)
}

func TestCreateRejectsAnnounceWithoutScheme(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "x")

	_, err := Create(CreateOptions{Path: f, Announce: "bar"})
	require.Error(t, err)
	assert.IsType(t, &errs.AnnounceURLParseError{}, err)
}

func TestCreatePrivateTrackerlessDeniedByDefault(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "x")

	_, err := Create(CreateOptions{Path: f, Private: true})
	require.Error(t, err)
	assert.IsType(t, &errs.PrivateTrackerlessError{}, err)
}

func TestCreatePrivateTrackerlessAllowed(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "x")

	allow := lint.NewSet()
	allow.Allow(lint.PrivateTrackerless)

	res, err := Create(CreateOptions{Path: f, Private: true, Allow: allow})
	require.NoError(t, err)
	assert.True(t, res.Metainfo.Info.Private)
}

func TestCreateSmallPieceLengthDeniedByDefault(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "abc")

	_, err := Create(CreateOptions{Path: f, PieceLength: 1})
	require.Error(t, err)
}

func TestCreateSmallPieceLengthAllowed(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "abc")

	allow := lint.NewSet()
	allow.Allow(lint.SmallPieceLength)

	res, err := Create(CreateOptions{Path: f, PieceLength: 1, Allow: allow})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Metainfo.Info.Pieces.Count())
}

func TestCreateRoundTripsThroughSerialize(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	writeFile(t, f, "hello world")

	res, err := Create(CreateOptions{Path: f, NoCreatedBy: true, NoCreationDate: true})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Bytes)
	assert.NotZero(t, res.InfoHash)

	parsed, err := metainfo.Parse(res.Bytes)
	require.NoError(t, err)
	assert.Equal(t, res.Bytes, parsed.Serialize())
	assert.Equal(t, res.InfoHash, parsed.Info.HashInfo())
}
