package bencode

import (
	"fmt"
)

// Decode parses a single bencoded value from the start of b and returns
// it along with the number of bytes consumed. It exists so the round-trip
// property required by spec ("serializing and re-parsing yields an equal
// Metainfo") and the in-test verify step can be checked without pulling
// in a third-party bencode library for the exact thing this package
// implements from scratch.
func Decode(b []byte) (Value, int, error) {
	if len(b) == 0 {
		return Value{}, 0, fmt.Errorf("bencode: empty input")
	}

	switch b[0] {
	case 'i':
		return decodeInt(b)
	case 'l':
		return decodeList(b)
	case 'd':
		return decodeDict(b)
	default:
		if b[0] >= '0' && b[0] <= '9' {
			return decodeBytes(b)
		}
		return Value{}, 0, fmt.Errorf("bencode: unexpected byte %q at start of value", b[0])
	}
}

// DecodeAll decodes exactly one value and errors if trailing bytes remain.
func DecodeAll(b []byte) (Value, error) {
	v, n, err := Decode(b)
	if err != nil {
		return Value{}, err
	}
	if n != len(b) {
		return Value{}, fmt.Errorf("bencode: %d trailing byte(s) after value", len(b)-n)
	}
	return v, nil
}

func decodeInt(b []byte) (Value, int, error) {
	end := indexByte(b, 'e')
	if end < 0 {
		return Value{}, 0, fmt.Errorf("bencode: unterminated integer")
	}
	digits := string(b[1:end])
	if digits == "" {
		return Value{}, 0, fmt.Errorf("bencode: empty integer")
	}
	if digits == "-0" {
		return Value{}, 0, fmt.Errorf("bencode: invalid integer %q", digits)
	}
	if len(digits) > 1 {
		start := 0
		if digits[0] == '-' {
			start = 1
		}
		if digits[start] == '0' {
			return Value{}, 0, fmt.Errorf("bencode: integer %q has leading zero", digits)
		}
	}
	n, err := parseInt64(digits)
	if err != nil {
		return Value{}, 0, fmt.Errorf("bencode: invalid integer %q: %w", digits, err)
	}
	return Int(n), end + 1, nil
}

func decodeBytes(b []byte) (Value, int, error) {
	colon := indexByte(b, ':')
	if colon < 0 {
		return Value{}, 0, fmt.Errorf("bencode: missing ':' in byte-string length")
	}
	lengthStr := string(b[:colon])
	length, err := parseInt64(lengthStr)
	if err != nil || length < 0 {
		return Value{}, 0, fmt.Errorf("bencode: invalid byte-string length %q", lengthStr)
	}
	start := colon + 1
	end := start + int(length)
	if end > len(b) {
		return Value{}, 0, fmt.Errorf("bencode: byte-string length %d exceeds remaining input", length)
	}
	out := make([]byte, length)
	copy(out, b[start:end])
	return Bytes(out), end, nil
}

func decodeList(b []byte) (Value, int, error) {
	pos := 1
	var items []Value
	for {
		if pos >= len(b) {
			return Value{}, 0, fmt.Errorf("bencode: unterminated list")
		}
		if b[pos] == 'e' {
			return List(items...), pos + 1, nil
		}
		v, n, err := Decode(b[pos:])
		if err != nil {
			return Value{}, 0, err
		}
		items = append(items, v)
		pos += n
	}
}

func decodeDict(b []byte) (Value, int, error) {
	pos := 1
	m := make(map[string]Value)
	for {
		if pos >= len(b) {
			return Value{}, 0, fmt.Errorf("bencode: unterminated dictionary")
		}
		if b[pos] == 'e' {
			return Dict(m), pos + 1, nil
		}
		keyVal, n, err := decodeBytes(b[pos:])
		if err != nil {
			return Value{}, 0, fmt.Errorf("bencode: dictionary key: %w", err)
		}
		key := string(keyVal.Bytes)
		pos += n

		if _, exists := m[key]; exists {
			return Value{}, 0, fmt.Errorf("bencode: %w: %q", ErrDuplicateKey, key)
		}

		val, n, err := Decode(b[pos:])
		if err != nil {
			return Value{}, 0, fmt.Errorf("bencode: dictionary value for key %q: %w", key, err)
		}
		m[key] = val
		pos += n
	}
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(s) {
		return 0, fmt.Errorf("no digits")
	}
	var n int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q", c)
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
