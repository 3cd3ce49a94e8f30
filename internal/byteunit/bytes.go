// Package byteunit parses byte quantities with SI and IEC suffixes, as
// used by --piece-length and presets. Formatting for
// terminal display is left to github.com/dustin/go-humanize (see
// internal/display); ParseBytes exists because humanize.ParseBytes binds
// "kb"/"mb" to 1024-based values, while spec requires the SI suffixes to
// mean decimal powers of 1000 and only the "ib" suffixes to mean 1024.
package byteunit

import (
	"fmt"
	"strconv"
	"strings"
)

// unit holds the multiplier for a recognized suffix.
type unit struct {
	suffix     string
	multiplier float64
}

// Ordered longest-suffix-first so e.g. "kib" is tried before "b".
var units = []unit{
	{"kib", 1 << 10},
	{"mib", 1 << 20},
	{"gib", 1 << 30},
	{"tib", 1 << 40},
	{"kb", 1000},
	{"mb", 1000 * 1000},
	{"gb", 1000 * 1000 * 1000},
	{"tb", 1000 * 1000 * 1000 * 1000},
	{"b", 1},
}

// ParseBytes parses a non-negative byte quantity such as "16KiB",
// "1.5mb", "4096", or "0.5mib". Suffix matching is case-insensitive.
// Fractional mantissas must round to an exact integer number of bytes.
func ParseBytes(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("byteunit: empty byte quantity")
	}
	lower := strings.ToLower(trimmed)

	if n, err := strconv.ParseUint(lower, 10, 64); err == nil {
		return n, nil
	}

	for _, u := range units {
		if !strings.HasSuffix(lower, u.suffix) {
			continue
		}
		mantissa := strings.TrimSpace(lower[:len(lower)-len(u.suffix)])
		if mantissa == "" {
			return 0, fmt.Errorf("byteunit: %q has no numeric value", s)
		}
		f, err := strconv.ParseFloat(mantissa, 64)
		if err != nil {
			return 0, fmt.Errorf("byteunit: invalid numeric value %q in %q", mantissa, s)
		}
		if f < 0 {
			return 0, fmt.Errorf("byteunit: negative byte quantity %q", s)
		}
		value := f * u.multiplier
		rounded := uint64(value + 0.5)
		if asFloat := float64(rounded); asFloat-value > 1e-6 || value-asFloat > 1e-6 {
			return 0, fmt.Errorf("byteunit: %q does not round to an exact byte count", s)
		}
		return rounded, nil
	}

	return 0, fmt.Errorf("byteunit: %q has no recognized unit suffix", s)
}
