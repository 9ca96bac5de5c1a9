package storekey

import (
	"bytes"
	"io"
)

// Codec defines an order-preserving binary encoding for values of type T.
//
// Encode and Decode should be lossless inverse operations: for every v of type T,
// Decode(NewReader(bytes.NewReader(b))) where b was produced by Encode(w, v) should return a
// value equal to v, and re-encoding that value should reproduce b exactly (spec invariant
// I4).
//
// RequiresTerminator reports whether a value encoded by this Codec must be escaped and
// terminated if more data follows it in the same stream: true for unbounded or
// possibly-zero-length encodings (strings, slices, maps), false for fixed-width primitives
// and any other encoding for which no non-empty encoding is a prefix of another.
type Codec[T any] interface {
	Encode(w *Writer, value T) error
	Decode(r *Reader) (T, error)
	RequiresTerminator() bool
}

// BorrowCodec extends Codec with a decode path over a [BorrowReader]. The Codecs in this
// package implement it by copying, [Bytes] and [String] included; the zero-copy borrowed
// results of spec section 4.2 come from the BorrowDecodeRef method of [BytesReference] and
// [StringReference], which return a [Reference].
type BorrowCodec[T any] interface {
	Codec[T]
	BorrowDecode(r *BorrowReader) (T, error)
}

// Encode writes value's encoding, using codec, to w.
func Encode[T any](w io.Writer, codec Codec[T], value T) error {
	return codec.Encode(NewWriter(w), value)
}

// EncodeToBytes returns value's encoding, using codec, as a new []byte.
//
// This is a convenience function for encoding a single value; use Codec.Encode directly via
// a shared Writer when encoding multiple values to the same stream. It panics if
// codec.Encode returns an error.
func EncodeToBytes[T any](codec Codec[T], value T) []byte {
	var buf bytes.Buffer
	// Encoding to an in-memory buffer cannot fail with an I/O error, so any error here comes
	// from the Codec rejecting value (a custom validation error, or an InvalidFormatError
	// such as PointerTo's nil or ArrayOf's wrong length), and it is raised as a panic.
	if err := codec.Encode(NewWriter(&buf), value); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Decode reads and returns a single value, using codec, from r. It returns
// [ErrBytesRemaining] if r has unread data after the value is fully decoded.
func Decode[T any](r io.Reader, codec Codec[T]) (T, error) {
	reader := NewReader(r)
	value, err := codec.Decode(reader)
	if err != nil {
		var zero T
		return zero, err
	}
	empty, err := reader.IsEmpty()
	if err != nil {
		var zero T
		return zero, err
	}
	if !empty {
		var zero T
		return zero, ErrBytesRemaining
	}
	return value, nil
}

// DecodeBorrow reads and returns a single value, using codec, from buf, borrowing from buf
// wherever codec's zero-copy path allows it. It returns [ErrBytesRemaining] if buf has
// unread data after the value is fully decoded.
func DecodeBorrow[T any](buf []byte, codec BorrowCodec[T]) (T, error) {
	reader := NewBorrowReader(buf)
	value, err := codec.BorrowDecode(reader)
	if err != nil {
		var zero T
		return zero, err
	}
	if !reader.IsEmpty() {
		var zero T
		return zero, ErrBytesRemaining
	}
	return value, nil
}

// BorrowDecodeField decodes one field's value from r using codec's borrowed decode path. It
// exists because a field's static type in generated code is Codec[T], not BorrowCodec[T] --
// storekeygen's generated BorrowDecode<Name> functions call this instead of asserting to
// BorrowCodec themselves, so a field Codec that doesn't support borrowed decode fails with
// the same kind of error [optionCodec.BorrowDecode] returns for the analogous case, rather
// than a panic from a failed type assertion in generated code.
func BorrowDecodeField[T any](r *BorrowReader, codec Codec[T]) (T, error) {
	var zero T
	borrowable, ok := codec.(BorrowCodec[T])
	if !ok {
		return zero, invalidFormat("codec for %T does not support borrowed decode", zero)
	}
	return borrowable.BorrowDecode(r)
}
