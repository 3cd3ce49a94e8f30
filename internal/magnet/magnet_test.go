package magnet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

func TestFormatWithPeers(t *testing.T) {
	raw, err := hex.DecodeString("516735f4b80f2b5487eed5f226075bdcde33a54e")
	require.NoError(t, err)
	var hash metainfo.InfoHash
	copy(hash[:], raw)

	uri := Format(hash, Options{
		Name: "foo",
		Peers: []metainfo.HostPort{
			{Host: "foo", Port: 1337},
			{Host: "bar", Port: 666},
		},
	})

	assert.Equal(t, "magnet:?xt=urn:btih:516735f4b80f2b5487eed5f226075bdcde33a54e&dn=foo&x.pe=foo:1337&x.pe=bar:666", uri)
}

func TestFormatWithoutNameOrPeers(t *testing.T) {
	var hash metainfo.InfoHash
	uri := Format(hash, Options{})
	assert.Equal(t, "magnet:?xt=urn:btih:0000000000000000000000000000000000000000", uri)
}
