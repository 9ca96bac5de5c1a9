package storekey

// bytesCodec is the Codec for []byte: each raw byte <= escapePrefix is preceded by an
// escape, and the value is terminated by an unescaped terminator, per spec section 4.2.
// Unlike a slice of uint8 encoded through [SliceOf], this Codec writes the whole value in
// one pass rather than element-by-element. Its BorrowDecode always returns a freshly
// allocated slice; [BytesReference] is the variant that can borrow from the input.
type bytesCodec struct{}

// Bytes returns the Codec for []byte.
func Bytes() Codec[[]byte] { return bytesCodec{} }

func (bytesCodec) Encode(w *Writer, value []byte) error {
	return w.WriteVariableBytes(value)
}

func (bytesCodec) Decode(r *Reader) ([]byte, error) {
	return r.ReadVariableBytes()
}

func (bytesCodec) BorrowDecode(r *BorrowReader) ([]byte, error) {
	return r.ReadVariableBytes()
}

func (bytesCodec) RequiresTerminator() bool { return true }

// BytesReference is the zero-copy counterpart of [Bytes]: its BorrowDecode method, exposed
// directly rather than through the [BorrowCodec] interface, returns a [Reference] borrowing
// from the input buffer whenever possible.
type BytesReferenceCodec struct{}

// BytesReference returns a Codec variant whose BorrowDecode method yields a [Reference],
// exposing the borrowed/owned distinction from spec section 4.6 to callers who want to
// avoid the allocation [bytesCodec.BorrowDecode] performs unconditionally.
func BytesReference() BytesReferenceCodec { return BytesReferenceCodec{} }

func (BytesReferenceCodec) Encode(w *Writer, value []byte) error {
	return w.WriteVariableBytes(value)
}

func (BytesReferenceCodec) Decode(r *Reader) ([]byte, error) {
	return r.ReadVariableBytes()
}

// BorrowDecodeRef decodes a borrowed-or-owned byte slice, per spec section 3's Reference
// return type.
func (BytesReferenceCodec) BorrowDecodeRef(r *BorrowReader) (Reference[[]byte], error) {
	return r.ReadReference()
}

func (BytesReferenceCodec) RequiresTerminator() bool { return true }
