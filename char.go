package storekey

import (
	"encoding/binary"
	"unicode/utf8"
)

// charCodec is the Codec for rune: a fixed 4-byte big-endian encoding of the Unicode code
// point, per spec section 4.1. Decoding rejects values that are not valid code points
// (surrogate halves, or values past utf8.MaxRune).
type charCodec struct{}

// Char returns the Codec for rune.
func Char() Codec[rune] { return charCodec{} }

func (charCodec) Encode(w *Writer, value rune) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(value))
	return w.WritePrimitive(buf[:])
}

func (charCodec) Decode(r *Reader) (rune, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return decodeChar(b)
}

func (charCodec) BorrowDecode(r *BorrowReader) (rune, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return decodeChar(b)
}

func (charCodec) RequiresTerminator() bool { return false }

func decodeChar(b []byte) (rune, error) {
	v := binary.BigEndian.Uint32(b)
	if v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, invalidFormat("char: %#x is not a valid code point", v)
	}
	return rune(v), nil
}
