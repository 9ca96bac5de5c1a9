package storekey

import "unicode/utf8"

// Reference is the result of a borrowed read: either a slice directly into the caller's
// input buffer (possible only when no interior escapes were present), or a freshly
// allocated owned buffer (when unescaping required copying). This is the Go shape of the
// original format's Cow<'de, [u8]>. [BorrowReader.ReadReference] produces a
// Reference[[]byte]; the type parameter lets [StringReferenceCodec] and other
// [ReferenceCodec] implementations carry the same borrowed/owned flag for other value types.
type Reference[T any] struct {
	value    T
	borrowed bool
}

// Borrowed reports whether Value points directly into the buffer passed to the BorrowReader
// that produced this Reference, as opposed to owning freshly allocated storage.
func (r Reference[T]) Borrowed() bool { return r.borrowed }

// Value returns the decoded value, borrowed or owned.
func (r Reference[T]) Value() T { return r.value }

func borrowedRef[T any](v T) Reference[T] { return Reference[T]{value: v, borrowed: true} }
func ownedRef[T any](v T) Reference[T]    { return Reference[T]{value: v, borrowed: false} }

// BorrowReader is a source over a contiguous byte slice, with the same contract as [Reader]
// plus the zero-copy borrowed-decode paths described in spec section 4.3/4.6: decoding a
// variable-length value returns a slice directly into the input when no escape byte was
// encountered while scanning, and falls back to an owned copy only once an escape appears.
//
// All slices returned by a BorrowReader's borrowed-decode methods share the lifetime of the
// slice it was constructed with; the caller must not mutate that slice while any borrowed
// result is in use.
type BorrowReader struct {
	buf          []byte
	expectEscape bool
}

// NewBorrowReader returns a BorrowReader over buf. buf is not copied.
func NewBorrowReader(buf []byte) *BorrowReader {
	return &BorrowReader{buf: buf}
}

// IsEmpty reports whether the reader has consumed all of its input.
func (r *BorrowReader) IsEmpty() bool {
	return len(r.buf) == 0
}

func (r *BorrowReader) advance(n int) {
	r.buf = r.buf[n:]
}

// ReadFixed reads n bytes, consulting and clearing expectEscape first exactly as
// [Reader.ReadFixed] does. The returned slice is always a fresh copy: primitives are fixed
// width and small, so there is no zero-copy benefit worth the aliasing hazard of handing
// back a slice that straddles an escape byte the caller didn't ask for.
func (r *BorrowReader) ReadFixed(n int) ([]byte, error) {
	if r.expectEscape {
		r.expectEscape = false
		if len(r.buf) == 0 {
			return nil, ErrUnexpectedEnd
		}
		if r.buf[0] == escapePrefix {
			r.advance(1)
		}
	}
	if len(r.buf) < n {
		return nil, ErrUnexpectedEnd
	}
	out := append([]byte(nil), r.buf[:n]...)
	r.advance(n)
	return out, nil
}

// ReadTerminator mirrors [Reader.ReadTerminator].
func (r *BorrowReader) ReadTerminator() (bool, error) {
	r.expectEscape = true
	if len(r.buf) == 0 {
		return false, ErrUnexpectedEnd
	}
	if r.buf[0] == terminator {
		r.advance(1)
		return true, nil
	}
	return false, nil
}

// ReadReference scans for the terminator of a variable-length value without unescaping. If
// no escape byte appears before the terminator, it returns a Reference borrowing directly
// into buf; as soon as an escape byte is found, it copies the scanned prefix into an owned
// buffer and continues unescaping from there. This is the zero-copy fast path described in
// spec section 4.2 and 4.6.
func (r *BorrowReader) ReadReference() (Reference[[]byte], error) {
	r.expectEscape = false
	for i := 0; i < len(r.buf); i++ {
		switch r.buf[i] {
		case terminator:
			value := r.buf[:i]
			r.advance(i + 1)
			return borrowedRef(value), nil
		case escapePrefix:
			owned := append([]byte(nil), r.buf[:i]...)
			if i+1 >= len(r.buf) {
				return Reference[[]byte]{}, ErrUnexpectedEnd
			}
			owned = append(owned, r.buf[i+1])
			r.advance(i + 2)
			rest, err := r.readUnescapedInto(owned)
			if err != nil {
				return Reference[[]byte]{}, err
			}
			return ownedRef(rest), nil
		}
	}
	return Reference[[]byte]{}, ErrUnexpectedEnd
}

func (r *BorrowReader) readUnescapedInto(buf []byte) ([]byte, error) {
	r.expectEscape = false
	escaped := false
	for i := 0; i < len(r.buf); i++ {
		b := r.buf[i]
		if !escaped {
			if b == terminator {
				r.advance(i + 1)
				return buf, nil
			}
			if b == escapePrefix {
				escaped = true
				continue
			}
		}
		escaped = false
		buf = append(buf, b)
	}
	return nil, ErrUnexpectedEnd
}

// ReadVariableBytes reads a full escaped, terminated value into a freshly allocated buffer,
// regardless of whether it could have been borrowed. Prefer ReadReference when the caller
// can make use of a borrowed result.
func (r *BorrowReader) ReadVariableBytes() ([]byte, error) {
	return r.readUnescapedInto(make([]byte, 0, 16))
}

// ReadEscapedView scans to the terminator of a variable-length value without unescaping,
// returning a borrowed [EscapedSlice] covering the raw escaped bytes including the
// terminator. Used for zero-allocation re-serialization via Writer.WritePreEscaped.
func (r *BorrowReader) ReadEscapedView() (*EscapedSlice, error) {
	escaped := false
	for i := 0; i < len(r.buf); i++ {
		b := r.buf[i]
		if !escaped {
			if b == terminator {
				view := escapedSliceFromRaw(r.buf[:i+1])
				r.advance(i + 1)
				return view, nil
			}
			if b == escapePrefix {
				escaped = true
				continue
			}
		}
		escaped = false
	}
	return nil, ErrUnexpectedEnd
}

// ReadEscapedStr is the string counterpart of ReadEscapedView, additionally validating that
// the view's unescaped contents are valid UTF-8.
func (r *BorrowReader) ReadEscapedStr() (*EscapedStr, error) {
	view, err := r.ReadEscapedView()
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(view.Bytes()) {
		return nil, ErrInvalidUTF8
	}
	return escapedStrFromSlice(view), nil
}
