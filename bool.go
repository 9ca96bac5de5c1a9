package storekey

// boolCodec is the Codec for bool, using the "safe form" byte values from spec section 4.1:
// 0x02 for false, 0x03 for true. Neither value needs escaping, so this Codec never touches
// pendingEscape/expectEscape beyond the usual primitive bookkeeping.
type boolCodec struct{}

// Bool returns the Codec for bool, using the current format's safe byte values.
func Bool() Codec[bool] { return boolCodec{} }

func (boolCodec) Encode(w *Writer, value bool) error {
	if value {
		return w.WritePrimitive([]byte{safeTrue})
	}
	return w.WritePrimitive([]byte{safeFalse})
}

func (boolCodec) Decode(r *Reader) (bool, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return false, err
	}
	return decodeBoolByte(b[0])
}

func (boolCodec) BorrowDecode(r *BorrowReader) (bool, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return false, err
	}
	return decodeBoolByte(b[0])
}

func (boolCodec) RequiresTerminator() bool { return false }

func decodeBoolByte(b byte) (bool, error) {
	switch b {
	case safeFalse:
		return false, nil
	case safeTrue:
		return true, nil
	default:
		return false, invalidFormat("bool: unexpected byte %#x", b)
	}
}

// legacyBoolCodec is the older format generation's bool encoding: unescaped 0x00/0x01.
// Spec section 9 notes the two generations coexist; this type is selected via the derive
// transformer's format-family parameter (see cmd/storekeygen) when bit-compatibility with
// older data is required. Unlike the safe form, this Codec's encoded bytes collide with the
// terminator/escape range, so it requires escaping wherever it might be followed by more
// data.
type legacyBoolCodec struct{}

// LegacyBool returns a Codec for bool using the older, unescaped 0x00/0x01 encoding. New
// code should use [Bool] unless it must stay bit-compatible with data written by a prior
// format generation.
func LegacyBool() Codec[bool] { return legacyBoolCodec{} }

func (legacyBoolCodec) Encode(w *Writer, value bool) error {
	if value {
		return w.WritePrimitive([]byte{1})
	}
	return w.WritePrimitive([]byte{0})
}

func (legacyBoolCodec) Decode(r *Reader) (bool, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (legacyBoolCodec) BorrowDecode(r *BorrowReader) (bool, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (legacyBoolCodec) RequiresTerminator() bool { return true }
