package storekey

import "encoding/binary"

// Codecs for fixed-width signed integers. These flip the sign bit and write the result in
// big-endian order, mapping the signed range onto an unsigned ordering:
//
//	0x80 00...  (most negative)  -> 0x00 00...
//	0xFF FF...  (-1)             -> 0x7F FF...
//	0x00 00...  (0)              -> 0x80 00...
//	0x7F FF...  (most positive)  -> 0xFF FF...
type (
	int8Codec  struct{}
	int16Codec struct{}
	int32Codec struct{}
	int64Codec struct{}
)

// Int8 returns the Codec for int8.
func Int8() Codec[int8] { return int8Codec{} }

// Int16 returns the Codec for int16.
func Int16() Codec[int16] { return int16Codec{} }

// Int32 returns the Codec for int32.
func Int32() Codec[int32] { return int32Codec{} }

// Int64 returns the Codec for int64.
func Int64() Codec[int64] { return int64Codec{} }

func (int8Codec) Encode(w *Writer, value int8) error {
	return w.WritePrimitive([]byte{byte(value) ^ 0x80})
}

func (int8Codec) Decode(r *Reader) (int8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0] ^ 0x80), nil
}

func (int8Codec) BorrowDecode(r *BorrowReader) (int8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0] ^ 0x80), nil
}

func (int8Codec) RequiresTerminator() bool { return false }

func (int16Codec) Encode(w *Writer, value int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(value)^0x8000)
	return w.WritePrimitive(buf[:])
}

func (int16Codec) Decode(r *Reader) (int16, error) {
	b, err := r.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b) ^ 0x8000), nil
}

func (int16Codec) BorrowDecode(r *BorrowReader) (int16, error) {
	b, err := r.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b) ^ 0x8000), nil
}

func (int16Codec) RequiresTerminator() bool { return false }

func (int32Codec) Encode(w *Writer, value int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(value)^0x8000_0000)
	return w.WritePrimitive(buf[:])
}

func (int32Codec) Decode(r *Reader) (int32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b) ^ 0x8000_0000), nil
}

func (int32Codec) BorrowDecode(r *BorrowReader) (int32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b) ^ 0x8000_0000), nil
}

func (int32Codec) RequiresTerminator() bool { return false }

func (int64Codec) Encode(w *Writer, value int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(value)^(1<<63))
	return w.WritePrimitive(buf[:])
}

func (int64Codec) Decode(r *Reader) (int64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63)), nil
}

func (int64Codec) BorrowDecode(r *BorrowReader) (int64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63)), nil
}

func (int64Codec) RequiresTerminator() bool { return false }

// Int128 is a 16-byte signed integer stored as big-endian bytes with the sign bit already
// flipped, the Go analogue of the original format's native i128 (see [Uint128] for why a
// byte array rather than a native type).
type Int128 [16]byte

type int128Codec struct{}

// Int128Codec returns the Codec for [Int128]. Callers are responsible for producing the
// sign-flipped big-endian representation: unlike the fixed-width signed Codecs above, this
// Codec writes the 16 bytes as given, with no sign-bit flip or two's-complement conversion.
func Int128Codec() Codec[Int128] { return int128Codec{} }

func (int128Codec) Encode(w *Writer, value Int128) error {
	return w.WritePrimitive(value[:])
}

func (int128Codec) Decode(r *Reader) (Int128, error) {
	b, err := r.ReadFixed(16)
	if err != nil {
		return Int128{}, err
	}
	var out Int128
	copy(out[:], b)
	return out, nil
}

func (int128Codec) BorrowDecode(r *BorrowReader) (Int128, error) {
	b, err := r.ReadFixed(16)
	if err != nil {
		return Int128{}, err
	}
	var out Int128
	copy(out[:], b)
	return out, nil
}

func (int128Codec) RequiresTerminator() bool { return false }
