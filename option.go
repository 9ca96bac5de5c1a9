package storekey

// optionCodec is the Codec for an optional value, framed as a single discriminant byte from
// the safe tag range (tagNone/tagSome) followed by the payload when present, per spec
// section 4.3. Go has no built-in Option type; this Codec operates on *E, treating nil as
// absent. [PointerTo] also operates on *E, but as a transparent box that rejects nil.
type optionCodec[E any] struct {
	elemCodec Codec[E]
}

// OptionOf returns a Codec for *E that encodes nil as tagNone and a non-nil pointer as
// tagSome followed by the referent's encoding, using elemCodec.
func OptionOf[E any](elemCodec Codec[E]) Codec[*E] {
	return optionCodec[E]{elemCodec}
}

func (c optionCodec[E]) Encode(w *Writer, value *E) error {
	if value == nil {
		return w.WritePrimitive([]byte{tagNone})
	}
	if err := w.WritePrimitive([]byte{tagSome}); err != nil {
		return err
	}
	return c.elemCodec.Encode(w, *value)
}

func (c optionCodec[E]) Decode(r *Reader) (*E, error) {
	tag, err := r.ReadFixed(1)
	if err != nil {
		return nil, err
	}
	switch tag[0] {
	case tagNone:
		return nil, nil
	case tagSome:
		value, err := c.elemCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, invalidFormat("option: unexpected tag %#x", tag[0])
	}
}

func (c optionCodec[E]) BorrowDecode(r *BorrowReader) (*E, error) {
	borrowable, ok := c.elemCodec.(BorrowCodec[E])
	tag, err := r.ReadFixed(1)
	if err != nil {
		return nil, err
	}
	switch tag[0] {
	case tagNone:
		return nil, nil
	case tagSome:
		var value E
		if ok {
			value, err = borrowable.BorrowDecode(r)
		} else {
			return nil, invalidFormat("option: element Codec does not support borrowed decode")
		}
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, invalidFormat("option: unexpected tag %#x", tag[0])
	}
}

func (optionCodec[E]) RequiresTerminator() bool { return false }
