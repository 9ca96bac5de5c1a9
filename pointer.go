package storekey

// pointerCodec is the Codec for *E acting as a non-nullable box/smart-pointer wrapper,
// transparent per spec section 4.3: it encodes and decodes exactly what elemCodec would for
// the referent, with no tag of its own. Unlike [optionCodec], nil is not a valid input to
// Encode; use PointerTo only to model a "boxed" field that is always present, and OptionOf
// for one that may be absent.
type pointerCodec[E any] struct {
	elemCodec Codec[E]
}

// PointerTo returns a transparent Codec for *E, delegating to elemCodec. Encode returns an
// [InvalidFormatError] if value is nil; for nullable fields, use [OptionOf] instead.
func PointerTo[E any](elemCodec Codec[E]) Codec[*E] {
	return pointerCodec[E]{elemCodec}
}

func (c pointerCodec[E]) Encode(w *Writer, value *E) error {
	if value == nil {
		return invalidFormat("pointer: cannot encode nil through PointerTo; use OptionOf for nullable fields")
	}
	return c.elemCodec.Encode(w, *value)
}

func (c pointerCodec[E]) Decode(r *Reader) (*E, error) {
	value, err := c.elemCodec.Decode(r)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (c pointerCodec[E]) BorrowDecode(r *BorrowReader) (*E, error) {
	borrowable, ok := c.elemCodec.(BorrowCodec[E])
	if !ok {
		return nil, invalidFormat("pointer: element Codec does not support borrowed decode")
	}
	value, err := borrowable.BorrowDecode(r)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (c pointerCodec[E]) RequiresTerminator() bool { return c.elemCodec.RequiresTerminator() }
