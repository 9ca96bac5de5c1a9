package storekey

import "unicode/utf8"

// stringCodec is the Codec for string: the same escape/terminator discipline as
// [bytesCodec], with a UTF-8 validity check on decode. Encoding '\x00' as part of a string
// is impossible to observe as an error here because every byte, including a raw NUL, is
// escaped before it can collide with the terminator; decode instead rejects any string
// whose escaped body is not valid UTF-8.
type stringCodec struct{}

// String returns the Codec for string.
func String() Codec[string] { return stringCodec{} }

func (stringCodec) Encode(w *Writer, value string) error {
	return w.WriteVariableBytes([]byte(value))
}

func (stringCodec) Decode(r *Reader) (string, error) {
	b, err := r.ReadVariableBytes()
	if err != nil {
		return "", err
	}
	return decodeUTF8(b)
}

func (stringCodec) BorrowDecode(r *BorrowReader) (string, error) {
	b, err := r.ReadVariableBytes()
	if err != nil {
		return "", err
	}
	return decodeUTF8(b)
}

func (stringCodec) RequiresTerminator() bool { return true }

// StringReference is the zero-copy counterpart of [String]: its BorrowDecodeRef method
// returns a [Reference][string] borrowing from the input buffer whenever no escape byte was
// present in the encoded form.
type StringReferenceCodec struct{}

// StringReference returns a Codec variant exposing the borrowed/owned [Reference] for
// strings, the way [BytesReference] does for byte slices.
func StringReference() StringReferenceCodec { return StringReferenceCodec{} }

func (StringReferenceCodec) Encode(w *Writer, value string) error {
	return w.WriteVariableBytes([]byte(value))
}

func (StringReferenceCodec) Decode(r *Reader) (string, error) {
	b, err := r.ReadVariableBytes()
	if err != nil {
		return "", err
	}
	return decodeUTF8(b)
}

func (StringReferenceCodec) BorrowDecodeRef(r *BorrowReader) (Reference[string], error) {
	ref, err := r.ReadReference()
	if err != nil {
		return Reference[string]{}, err
	}
	s, err := decodeUTF8(ref.Value())
	if err != nil {
		return Reference[string]{}, err
	}
	if ref.Borrowed() {
		return borrowedRef(s), nil
	}
	return ownedRef(s), nil
}

func (StringReferenceCodec) RequiresTerminator() bool { return true }

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
