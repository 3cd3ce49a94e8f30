package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: 1
default:
  comment: "default comment"
  no_date: false
presets:
  private:
    private: true
    trackers:
      - http://tracker.example/announce
  public:
    comment: "public preset"
`

func TestLoadAndGetMergesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	priv, err := cfg.Get("private")
	require.NoError(t, err)
	assert.True(t, *priv.Private)
	assert.Equal(t, "default comment", priv.Comment)
	assert.Equal(t, []string{"http://tracker.example/announce"}, priv.Trackers)

	pub, err := cfg.Get("public")
	require.NoError(t, err)
	assert.Equal(t, "public preset", pub.Comment)
}

func TestGetUnknownPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Get("nope")
	require.Error(t, err)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2\npresets: {}\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
