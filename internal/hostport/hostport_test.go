package hostport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	hp, err := Parse("router.example.com:1337")
	require.NoError(t, err)
	assert.Equal(t, "router.example.com", hp.Host)
	assert.Equal(t, uint16(1337), hp.Port)
}

func TestParseIPv4(t *testing.T) {
	hp, err := Parse("203.0.113.0:2290")
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.0", hp.Host)
	assert.Equal(t, uint16(2290), hp.Port)
}

func TestParseIPv6Bracketed(t *testing.T) {
	hp, err := Parse("[2001:db8:4275:7920:6269:7463:6f69:6e21]:8832")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8:4275:7920:6269:7463:6f69:6e21", hp.Host)
	assert.Equal(t, uint16(8832), hp.Port)
}

func TestParseRejectsMissingPort(t *testing.T) {
	_, err := Parse("example.com")
	require.Error(t, err)
}

func TestParseRejectsInvalidPort(t *testing.T) {
	_, err := Parse("example.com:notaport")
	require.Error(t, err)

	_, err = Parse("example.com:0")
	require.Error(t, err)

	_, err = Parse("example.com:99999")
	require.Error(t, err)
}

func TestParseRejectsUnterminatedIPv6(t *testing.T) {
	_, err := Parse("[2001:db8::1:1337")
	require.Error(t, err)
}
