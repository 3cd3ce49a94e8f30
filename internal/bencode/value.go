// Package bencode implements the BEP 3 bencoding used by BitTorrent
// metainfo files: a minimal value model plus a canonical, byte-exact
// serializer and a matching decoder.
package bencode

import (
	"errors"
	"fmt"
	"sort"
)

// Value is a closed sum type over the four bencode kinds: integer,
// byte-string, list, and dictionary. Exactly one of the fields is
// meaningful for a given Kind.
type Value struct {
	Kind Kind

	Int   int64
	Bytes []byte
	List  []Value
	Dict  map[string]Value
}

// Kind tags which of Value's fields is populated.
type Kind int

const (
	KindInt Kind = iota
	KindBytes
	KindList
	KindDict
)

func Int(n int64) Value              { return Value{Kind: KindInt, Int: n} }
func String(s string) Value          { return Value{Kind: KindBytes, Bytes: []byte(s)} }
func Bytes(b []byte) Value           { return Value{Kind: KindBytes, Bytes: b} }
func List(items ...Value) Value      { return Value{Kind: KindList, List: items} }
func Dict(m map[string]Value) Value  { return Value{Kind: KindDict, Dict: m} }

// ErrDuplicateKey is returned (wrapped) by Decode when an encoded
// dictionary repeats a key. Encode cannot meet a repeated key, since a
// Value's dictionary is a Go map.
var ErrDuplicateKey = errors.New("bencode: duplicate dictionary key")

// DictBuilder accumulates dictionary entries, then yields a dictionary
// Value whose keys Encode emits in sorted order. Setting a key that is
// already present replaces its value; the repeat is not reported.
type DictBuilder struct {
	keys   []string
	values map[string]Value
}

func NewDictBuilder() *DictBuilder {
	return &DictBuilder{values: make(map[string]Value)}
}

func (b *DictBuilder) Set(key string, v Value) *DictBuilder {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return b
}

func (b *DictBuilder) Build() Value {
	m := make(map[string]Value, len(b.values))
	for _, k := range b.keys {
		m[k] = b.values[k]
	}
	return Dict(m)
}

// SortedKeys returns a Value's dictionary keys in ascending byte order,
// the order the serializer is required to emit them in.
func SortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.Int)
	case KindBytes:
		return fmt.Sprintf("Bytes(%q)", v.Bytes)
	case KindList:
		return fmt.Sprintf("List(%d items)", len(v.List))
	case KindDict:
		return fmt.Sprintf("Dict(%d keys)", len(v.Dict))
	default:
		return "Value(invalid)"
	}
}
