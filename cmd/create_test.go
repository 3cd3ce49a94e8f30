package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// resetCreateFlags restores every package-level create flag to its zero
// value so tests can run runCreate directly without going through cobra's
// flag parser (which does not reset unset flags between Execute calls).
func resetCreateFlags(t *testing.T) {
	t.Helper()
	flagInputPath = ""
	flagAnnounce = ""
	flagTiers = nil
	flagComment = ""
	flagNodes = nil
	flagDryRun = false
	flagFollowLinks = false
	flagForce = false
	flagGlobs = nil
	flagIncludeHide = false
	flagIncludeJunk = false
	flagLink = false
	flagMD5 = false
	flagName = ""
	flagNoCreatedBy = false
	flagNoCreateDate = false
	flagOpen = false
	flagOrder = "alphabetical-asc"
	flagOutput = ""
	flagPeers = nil
	flagPieceLength = ""
	flagPrivate = false
	flagShow = false
	flagSource = ""
	flagAllow = nil
	flagEntropy = false
	flagPresetName = ""
	flagPresetFile = ""
	flagWebSeeds = nil
}

func TestRunCreateSingleEmptyFile(t *testing.T) {
	resetCreateFlags(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	flagInputPath = f
	flagAnnounce = "http://bar"
	flagNoCreatedBy = true
	flagNoCreateDate = true

	require.NoError(t, runCreate(createCmd, nil))

	data, err := os.ReadFile(f + ".torrent")
	require.NoError(t, err)

	mi, err := metainfo.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "foo", mi.Info.Name)
	assert.Equal(t, 0, mi.Info.Pieces.Count())
}

func TestRunCreateMagnetWithPeers(t *testing.T) {
	resetCreateFlags(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	flagInputPath = f
	flagLink = true
	flagPeers = []string{"foo:1337", "bar:666"}
	flagNoCreatedBy = true
	flagNoCreateDate = true

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	require.NoError(t, runCreate(createCmd, nil))
	w.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Equal(t, "magnet:?xt=urn:btih:516735f4b80f2b5487eed5f226075bdcde33a54e&dn=foo&x.pe=foo:1337&x.pe=bar:666\n", buf.String())
}

func TestRunCreateWritesWebSeeds(t *testing.T) {
	resetCreateFlags(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	require.NoError(t, os.WriteFile(f, []byte("hi"), 0o644))

	flagInputPath = f
	flagWebSeeds = []string{"http://a.example/foo", "http://b.example/foo"}
	flagNoCreatedBy = true
	flagNoCreateDate = true

	require.NoError(t, runCreate(createCmd, nil))

	data, err := os.ReadFile(f + ".torrent")
	require.NoError(t, err)

	mi, err := metainfo.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example/foo", "http://b.example/foo"}, mi.UrlList)
}

func TestRunCreateRejectsPeerWithoutLink(t *testing.T) {
	resetCreateFlags(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "foo")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	flagInputPath = f
	flagPeers = []string{"foo:1337"}

	err := runCreate(createCmd, nil)
	require.Error(t, err)
}
