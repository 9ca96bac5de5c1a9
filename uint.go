package storekey

import "encoding/binary"

// Codecs for fixed-width unsigned integers. These encode a value in big-endian order, which
// is already order-preserving for unsigned values: lexicographic comparison of the bytes
// equals numeric comparison.
type (
	uint8Codec  struct{}
	uint16Codec struct{}
	uint32Codec struct{}
	uint64Codec struct{}
)

// Uint8 returns the Codec for uint8.
func Uint8() Codec[uint8] { return uint8Codec{} }

// Uint16 returns the Codec for uint16.
func Uint16() Codec[uint16] { return uint16Codec{} }

// Uint32 returns the Codec for uint32.
func Uint32() Codec[uint32] { return uint32Codec{} }

// Uint64 returns the Codec for uint64.
func Uint64() Codec[uint64] { return uint64Codec{} }

func (uint8Codec) Encode(w *Writer, value uint8) error {
	return w.WritePrimitive([]byte{value})
}

func (uint8Codec) Decode(r *Reader) (uint8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (uint8Codec) BorrowDecode(r *BorrowReader) (uint8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (uint8Codec) RequiresTerminator() bool { return false }

func (uint16Codec) Encode(w *Writer, value uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], value)
	return w.WritePrimitive(buf[:])
}

func (uint16Codec) Decode(r *Reader) (uint16, error) {
	b, err := r.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (uint16Codec) BorrowDecode(r *BorrowReader) (uint16, error) {
	b, err := r.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (uint16Codec) RequiresTerminator() bool { return false }

func (uint32Codec) Encode(w *Writer, value uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], value)
	return w.WritePrimitive(buf[:])
}

func (uint32Codec) Decode(r *Reader) (uint32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (uint32Codec) BorrowDecode(r *BorrowReader) (uint32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (uint32Codec) RequiresTerminator() bool { return false }

func (uint64Codec) Encode(w *Writer, value uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	return w.WritePrimitive(buf[:])
}

func (uint64Codec) Decode(r *Reader) (uint64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (uint64Codec) BorrowDecode(r *BorrowReader) (uint64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (uint64Codec) RequiresTerminator() bool { return false }

// Uint128 is a 16-byte unsigned integer stored as big-endian bytes, the Go analogue of the
// original format's native u128: Go has no built-in 128-bit integer type, so a fixed-size
// byte array is the idiomatic substitute that still orders correctly byte-for-byte.
type Uint128 [16]byte

type uint128Codec struct{}

// Uint128Codec returns the Codec for [Uint128].
func Uint128Codec() Codec[Uint128] { return uint128Codec{} }

func (uint128Codec) Encode(w *Writer, value Uint128) error {
	return w.WritePrimitive(value[:])
}

func (uint128Codec) Decode(r *Reader) (Uint128, error) {
	b, err := r.ReadFixed(16)
	if err != nil {
		return Uint128{}, err
	}
	var out Uint128
	copy(out[:], b)
	return out, nil
}

func (uint128Codec) BorrowDecode(r *BorrowReader) (Uint128, error) {
	b, err := r.ReadFixed(16)
	if err != nil {
		return Uint128{}, err
	}
	var out Uint128
	copy(out[:], b)
	return out, nil
}

func (uint128Codec) RequiresTerminator() bool { return false }
