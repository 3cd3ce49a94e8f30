package byteunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytesSuffixes(t *testing.T) {
	cases := map[string]uint64{
		"0":       0,
		"4096":    4096,
		"16KiB":   16 << 10,
		"16kib":   16 << 10,
		"1MiB":    1 << 20,
		"1GiB":    1 << 30,
		"1TiB":    1 << 40,
		"1kb":     1000,
		"1mb":     1000 * 1000,
		"1gb":     1000 * 1000 * 1000,
		"1b":      1,
		"0.5mib":  512 << 10,
		"1.5kib":  1536,
		"2   mib": 2 << 20,
	}
	for in, want := range cases {
		got, err := ParseBytes(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBytesRejectsInexactFraction(t *testing.T) {
	_, err := ParseBytes("0.3b")
	require.Error(t, err)
}

func TestParseBytesRejectsGarbage(t *testing.T) {
	_, err := ParseBytes("not-a-size")
	require.Error(t, err)

	_, err = ParseBytes("")
	require.Error(t, err)

	_, err = ParseBytes("-5mib")
	require.Error(t, err)
}
