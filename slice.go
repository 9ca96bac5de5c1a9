package storekey

// sliceCodec is the Codec for []E, a variable-length sequence of elements framed per spec
// section 4.3: before every element the writer is told a terminator could be misread
// ([Writer.MarkTerminator]), and a lone terminator after the last element ends the sequence.
// This lets the reader tell "another element follows" from "sequence ends" without a length
// prefix, which would otherwise break ordering.
type sliceCodec[E any] struct {
	elemCodec Codec[E]
}

// SliceOf returns a Codec for []E using elemCodec for each element.
func SliceOf[E any](elemCodec Codec[E]) Codec[[]E] {
	return sliceCodec[E]{elemCodec}
}

func (c sliceCodec[E]) Encode(w *Writer, value []E) error {
	for _, elem := range value {
		w.MarkTerminator()
		if err := c.elemCodec.Encode(w, elem); err != nil {
			return err
		}
	}
	return w.WriteTerminator()
}

func (c sliceCodec[E]) Decode(r *Reader) ([]E, error) {
	var out []E
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		elem, err := c.elemCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
}

func (c sliceCodec[E]) BorrowDecode(r *BorrowReader) ([]E, error) {
	borrowable, ok := c.elemCodec.(BorrowCodec[E])
	var out []E
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		if !ok {
			return nil, invalidFormat("slice: element Codec does not support borrowed decode")
		}
		elem, err := borrowable.BorrowDecode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
}

func (sliceCodec[E]) RequiresTerminator() bool { return true }
