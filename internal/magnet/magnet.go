// Package magnet formats BEP 9 magnet URIs from a computed info-hash.
package magnet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/torrentsmith/torrentsmith/internal/metainfo"
)

// Options configures one magnet URI.
type Options struct {
	Name  string
	Peers []metainfo.HostPort
}

// Format builds the magnet URI for hash. Query parameters are emitted in
// a fixed order (xt, dn, x.pe...) and are not percent-encoded beyond what
// BEP 9 examples show in the wild: name is query-escaped, peer addresses
// are written verbatim as host:port (so the ':' stays unescaped).
func Format(hash metainfo.InfoHash, opts Options) string {
	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(hash.String())

	if opts.Name != "" {
		b.WriteString("&dn=")
		b.WriteString(url.QueryEscape(opts.Name))
	}

	for _, p := range opts.Peers {
		fmt.Fprintf(&b, "&x.pe=%s", p.String())
	}

	return b.String()
}
