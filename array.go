package storekey

// arrayCodec is the Codec for [N]E, a fixed-size array of exactly n elements written
// back-to-back with no terminator, per spec section 4.3: the caller already knows N, so no
// framing is needed to tell where the array ends.
type arrayCodec[E any] struct {
	elemCodec Codec[E]
	n         int
}

// ArrayOf returns a Codec for fixed-length []E of exactly n elements, using elemCodec for
// each. Encode returns an error if value does not have length n; Decode always produces a
// slice of length n.
func ArrayOf[E any](elemCodec Codec[E], n int) Codec[[]E] {
	return arrayCodec[E]{elemCodec, n}
}

func (c arrayCodec[E]) Encode(w *Writer, value []E) error {
	if len(value) != c.n {
		return invalidFormat("array: expected %d elements, got %d", c.n, len(value))
	}
	for _, elem := range value {
		if err := c.elemCodec.Encode(w, elem); err != nil {
			return err
		}
	}
	return nil
}

func (c arrayCodec[E]) Decode(r *Reader) ([]E, error) {
	out := make([]E, c.n)
	for i := range out {
		elem, err := c.elemCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

func (c arrayCodec[E]) BorrowDecode(r *BorrowReader) ([]E, error) {
	borrowable, ok := c.elemCodec.(BorrowCodec[E])
	if !ok {
		return nil, invalidFormat("array: element Codec does not support borrowed decode")
	}
	out := make([]E, c.n)
	for i := range out {
		elem, err := borrowable.BorrowDecode(r)
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

func (arrayCodec[E]) RequiresTerminator() bool { return false }
