package storekey

import (
	"encoding/binary"
	"math"
)

// float32Codec and float64Codec implement the IEEE-754 order-preserving transform from
// spec section 4.1: reinterpret the bits as a signed integer v of the matching width, then
// compute t = (v >> (W-1)) | signBit (arithmetic shift) and encode v XOR t.
//
// For a positive float (sign bit 0), v >> (W-1) is all zero bits, so t is just signBit and
// only the sign bit flips: positive floats sort above negatives, and increasing magnitude
// sorts higher. For a negative float (sign bit 1), v >> (W-1) is all one bits, so t is all
// ones and every bit flips: larger magnitude (more negative) then sorts lower, as required.
//
// NaN bit patterns pass through the same transform. Their relative order is deterministic
// but not meaningful, per spec section 9.
type (
	float32Codec struct{}
	float64Codec struct{}
)

// Float32 returns the Codec for float32.
func Float32() Codec[float32] { return float32Codec{} }

// Float64 returns the Codec for float64.
func Float64() Codec[float64] { return float64Codec{} }

func (float32Codec) Encode(w *Writer, value float32) error {
	v := int32(math.Float32bits(value))
	t := (v >> 31) | math.MinInt32
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v^t))
	return w.WritePrimitive(buf[:])
}

func (float32Codec) Decode(r *Reader) (float32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return decodeFloat32(b), nil
}

func (float32Codec) BorrowDecode(r *BorrowReader) (float32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return decodeFloat32(b), nil
}

func (float32Codec) RequiresTerminator() bool { return false }

func decodeFloat32(b []byte) float32 {
	v := int32(binary.BigEndian.Uint32(b))
	t := ((v ^ math.MinInt32) >> 31) | math.MinInt32
	return math.Float32frombits(uint32(v ^ t))
}

func (float64Codec) Encode(w *Writer, value float64) error {
	v := int64(math.Float64bits(value))
	t := (v >> 63) | math.MinInt64
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v^t))
	return w.WritePrimitive(buf[:])
}

func (float64Codec) Decode(r *Reader) (float64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return decodeFloat64(b), nil
}

func (float64Codec) BorrowDecode(r *BorrowReader) (float64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return decodeFloat64(b), nil
}

func (float64Codec) RequiresTerminator() bool { return false }

func decodeFloat64(b []byte) float64 {
	v := int64(binary.BigEndian.Uint64(b))
	t := ((v ^ math.MinInt64) >> 63) | math.MinInt64
	return math.Float64frombits(uint64(v ^ t))
}
