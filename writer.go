package storekey

import "io"

// Writer is a stateful sink for order-preserving encodings. It wraps an io.Writer and
// tracks pendingEscape, the one bit of state described in spec section 3: whether the next
// byte written sits at a position where a terminator would be ambiguous, and therefore must
// be escaped if it is <= escapePrefix.
//
// A Writer is not safe for concurrent use. Distinct Writers over distinct sinks are
// independent and may be used concurrently from separate goroutines.
type Writer struct {
	sink          io.Writer
	pendingEscape bool
}

// NewWriter returns a Writer that writes encoded values to sink.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{sink: sink}
}

// MarkTerminator declares that a terminator could legitimately appear at the current
// position, and so the next primitive write must escape its first byte if that byte is
// <= escapePrefix. Composite codecs (slices, maps) call this immediately before encoding
// each element.
func (w *Writer) MarkTerminator() {
	w.pendingEscape = true
}

// WriteTerminator writes a lone, unescaped terminator byte, ending a variable-length
// sequence framed with MarkTerminator.
func (w *Writer) WriteTerminator() error {
	_, err := w.sink.Write([]byte{terminator})
	return err
}

// WritePrimitive writes the fixed-width encoding of a primitive value, consulting and
// clearing pendingEscape first. If pendingEscape was set and the first byte of data is
// <= escapePrefix, an escapePrefix byte is emitted first.
func (w *Writer) WritePrimitive(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if w.pendingEscape {
		w.pendingEscape = false
		if needsEscape(data[0]) {
			if _, err := w.sink.Write([]byte{escapePrefix}); err != nil {
				return err
			}
		}
	}
	_, err := w.sink.Write(data)
	return err
}

// WriteVariableBytes writes value byte by byte, escaping any byte <= escapePrefix, followed
// by a lone unescaped terminator. pendingEscape is cleared on entry: the terminator grammar
// is self-delimiting, so a variable-length value never needs an escape of its own first
// byte on top of its own escaping.
func (w *Writer) WriteVariableBytes(value []byte) error {
	w.pendingEscape = false
	for _, b := range value {
		if needsEscape(b) {
			if _, err := w.sink.Write([]byte{escapePrefix}); err != nil {
				return err
			}
		}
		if _, err := w.sink.Write([]byte{b}); err != nil {
			return err
		}
	}
	return w.WriteTerminator()
}

// WritePreEscaped writes the raw bytes of an already-escaped-and-terminated view, as
// produced by BorrowReader.ReadEscapedView, without re-escaping them. This is the fast path
// for re-serializing a borrowed value unchanged.
func (w *Writer) WritePreEscaped(view []byte) error {
	w.pendingEscape = false
	_, err := w.sink.Write(view)
	return err
}
