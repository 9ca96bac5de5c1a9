package storekey

import (
	"bufio"
	"io"
)

// Reader is a streaming source for order-preserving encodings, the mirror image of
// [Writer]. It wraps a buffered io.Reader and tracks expectEscape, set before reading an
// element that might start with an escaped byte.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src          *bufio.Reader
	expectEscape bool
}

// NewReader returns a Reader that reads encoded values from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(src)}
}

// IsEmpty reports whether the reader has no more data. [Decode] uses this to detect
// trailing bytes after a root value has been fully consumed.
func (r *Reader) IsEmpty() (bool, error) {
	_, err := r.src.Peek(1)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// ReadFixed reads n bytes, consulting and clearing expectEscape first: if set, a leading
// escapePrefix byte is consumed (and not counted against n) before the n data bytes are
// read.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if r.expectEscape {
		r.expectEscape = false
		b, err := r.src.ReadByte()
		if err != nil {
			return nil, unexpectedIfEOF(err)
		}
		if b != escapePrefix {
			buf := make([]byte, n)
			buf[0] = b
			if n > 1 {
				if _, err := io.ReadFull(r.src, buf[1:]); err != nil {
					return nil, unexpectedIfEOF(err)
				}
			}
			return buf, nil
		}
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r.src, buf); err != nil {
			return nil, unexpectedIfEOF(err)
		}
	}
	return buf, nil
}

// ReadTerminator peeks the next byte and unconditionally sets expectEscape, since whatever
// is read next (the terminator itself, or the start of another element) sits at a position
// the writer marked with MarkTerminator. If the byte is an unescaped terminator, it is
// consumed and ReadTerminator returns true; otherwise the stream is left untouched and
// ReadTerminator returns false, so the caller can proceed to decode another element.
func (r *Reader) ReadTerminator() (bool, error) {
	r.expectEscape = true
	b, err := r.src.Peek(1)
	if err != nil {
		return false, unexpectedIfEOF(err)
	}
	if b[0] == terminator {
		_, _ = r.src.Discard(1)
		return true, nil
	}
	return false, nil
}

// ReadVariableBytes reads a full escaped, terminated value into a freshly allocated buffer.
func (r *Reader) ReadVariableBytes() ([]byte, error) {
	r.expectEscape = false
	out := make([]byte, 0, 16)
	escaped := false
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			return nil, unexpectedIfEOF(err)
		}
		if !escaped {
			if b == terminator {
				return out, nil
			}
			if b == escapePrefix {
				escaped = true
				continue
			}
		}
		escaped = false
		out = append(out, b)
	}
}

func unexpectedIfEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEnd
	}
	return err
}
