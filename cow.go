package storekey

// ReferenceCodec is implemented by element Codecs that can report, on the borrowed-decode
// path, whether their result actually borrows from the input buffer. [BytesReferenceCodec]
// and [StringReferenceCodec] are the two built-in implementations.
type ReferenceCodec[E any] interface {
	Codec[E]
	BorrowDecodeRef(r *BorrowReader) (Reference[E], error)
}

// cowCodec is the Codec for a copy-on-write wrapper around E, per spec section 4.3:
// transparent on encode, and on the borrowed-decode path it surfaces whichever of
// borrowed/owned the wrapped ReferenceCodec actually produced rather than discarding that
// information the way a plain [Codec] decode would.
type cowCodec[E any] struct {
	elemCodec ReferenceCodec[E]
}

// CowOf returns a Codec[E] that is transparent on Encode/Decode and whose BorrowDecodeRef
// method (not part of the Codec interface; call it directly, or through
// [DecodeBorrowReference]) exposes elemCodec's borrowed/owned result.
func CowOf[E any](elemCodec ReferenceCodec[E]) cowCodec[E] {
	return cowCodec[E]{elemCodec}
}

func (c cowCodec[E]) Encode(w *Writer, value E) error {
	return c.elemCodec.Encode(w, value)
}

func (c cowCodec[E]) Decode(r *Reader) (E, error) {
	return c.elemCodec.Decode(r)
}

func (c cowCodec[E]) BorrowDecode(r *BorrowReader) (E, error) {
	ref, err := c.elemCodec.BorrowDecodeRef(r)
	if err != nil {
		var zero E
		return zero, err
	}
	return ref.Value(), nil
}

// BorrowDecodeRef decodes through the wrapped ReferenceCodec, preserving whether the result
// borrows from the input buffer.
func (c cowCodec[E]) BorrowDecodeRef(r *BorrowReader) (Reference[E], error) {
	return c.elemCodec.BorrowDecodeRef(r)
}

func (c cowCodec[E]) RequiresTerminator() bool { return c.elemCodec.RequiresTerminator() }

// DecodeBorrowReference decodes a complete, type-known value from buf using a ReferenceCodec,
// verifying buf is fully consumed, and returns the resulting Reference so callers can tell
// whether the result borrows from buf.
func DecodeBorrowReference[E any](buf []byte, codec ReferenceCodec[E]) (Reference[E], error) {
	r := NewBorrowReader(buf)
	ref, err := codec.BorrowDecodeRef(r)
	if err != nil {
		return Reference[E]{}, err
	}
	if !r.IsEmpty() {
		return Reference[E]{}, ErrBytesRemaining
	}
	return ref, nil
}
