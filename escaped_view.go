package storekey

import "strings"

// EscapedSlice is a borrowed view of a byte range that is still in wire format: it contains
// escapes and ends in a terminator. It exists so a value decoded with
// [BorrowReader.ReadEscapedView] can be written back out unchanged with
// [Writer.WritePreEscaped] without ever unescaping or re-escaping it.
//
// The zero value is not a valid EscapedSlice; construct one via ReadEscapedView.
type EscapedSlice struct {
	raw []byte // escaped bytes, including the trailing terminator
}

// escapedSliceFromRaw wraps raw, which must already be a valid escaped-and-terminated
// encoding, as an EscapedSlice. Callers are BorrowReader methods that have just finished
// scanning raw and verified this invariant.
func escapedSliceFromRaw(raw []byte) *EscapedSlice {
	return &EscapedSlice{raw: raw}
}

// Raw returns the underlying escaped bytes, including the trailing terminator, suitable for
// passing to [Writer.WritePreEscaped].
func (s *EscapedSlice) Raw() []byte {
	return s.raw
}

// Bytes returns the unescaped logical contents of the view, allocating a fresh buffer.
func (s *EscapedSlice) Bytes() []byte {
	out := make([]byte, 0, len(s.raw))
	for it := s.Iter(); it.Next(); {
		out = append(out, it.Byte())
	}
	return out
}

// Iter returns an iterator over the unescaped bytes of the view.
func (s *EscapedSlice) Iter() *EscapedSliceIter {
	body := s.raw
	if len(body) > 0 {
		body = body[:len(body)-1] // drop the terminator
	}
	return &EscapedSliceIter{body: body}
}

// Equal reports whether the view's unescaped contents equal other.
func (s *EscapedSlice) Equal(other []byte) bool {
	i := 0
	for it := s.Iter(); it.Next(); {
		if i >= len(other) || it.Byte() != other[i] {
			return false
		}
		i++
	}
	return i == len(other)
}

// EscapedSliceIter iterates the unescaped bytes of an [EscapedSlice].
type EscapedSliceIter struct {
	body    []byte
	current byte
}

// Next advances the iterator, returning false when exhausted.
func (it *EscapedSliceIter) Next() bool {
	if len(it.body) == 0 {
		return false
	}
	b := it.body[0]
	it.body = it.body[1:]
	if b == escapePrefix {
		if len(it.body) == 0 {
			return false
		}
		b = it.body[0]
		it.body = it.body[1:]
	}
	it.current = b
	return true
}

// Byte returns the byte produced by the most recent call to Next.
func (it *EscapedSliceIter) Byte() byte { return it.current }

// EscapedStr is the string counterpart of [EscapedSlice]: a borrowed view of an escaped,
// terminated byte range known to be valid UTF-8 once unescaped.
type EscapedStr struct {
	slice *EscapedSlice
}

func escapedStrFromSlice(s *EscapedSlice) *EscapedStr {
	return &EscapedStr{slice: s}
}

// Raw returns the underlying escaped bytes, including the trailing terminator.
func (s *EscapedStr) Raw() []byte { return s.slice.Raw() }

// AsSlice returns the underlying [EscapedSlice].
func (s *EscapedStr) AsSlice() *EscapedSlice { return s.slice }

// String returns the unescaped logical contents of the view.
func (s *EscapedStr) String() string {
	var b strings.Builder
	for it := s.slice.Iter(); it.Next(); {
		b.WriteByte(it.Byte())
	}
	return b.String()
}

// Equal reports whether the view's unescaped contents equal other.
func (s *EscapedStr) Equal(other string) bool {
	return s.slice.Equal([]byte(other))
}
