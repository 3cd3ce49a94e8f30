package bencode

import (
	"bytes"
	"fmt"
)

// Encode serializes v into canonical bencode form: sorted dictionary
// keys, no redundant whitespace, exact length-prefixed strings. The
// output is byte-deterministic for a given Value — two encodes of equal
// Values always produce identical bytes, which is what makes the
// info-hash stable.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	encodeInto(&buf, v)
	return buf.Bytes()
}

func encodeInto(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindInt:
		fmt.Fprintf(buf, "i%de", v.Int)
	case KindBytes:
		fmt.Fprintf(buf, "%d:", len(v.Bytes))
		buf.Write(v.Bytes)
	case KindList:
		buf.WriteByte('l')
		for _, item := range v.List {
			encodeInto(buf, item)
		}
		buf.WriteByte('e')
	case KindDict:
		buf.WriteByte('d')
		for _, key := range SortedKeys(v.Dict) {
			fmt.Fprintf(buf, "%d:", len(key))
			buf.WriteString(key)
			encodeInto(buf, v.Dict[key])
		}
		buf.WriteByte('e')
	default:
		panic(fmt.Sprintf("bencode: invalid Value kind %d", v.Kind))
	}
}
