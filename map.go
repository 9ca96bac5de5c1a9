package storekey

// mapCodec is the Codec for map[K]V: a sequence of (key, value) pairs framed exactly like
// [sliceCodec], per spec section 4.3. Encoding order is Go's map iteration order, which is
// randomized per run, so two maps with the same contents do not necessarily produce the same
// bytes; use [OrderedMap] when canonical, order-preserving output is required.
type mapCodec[K comparable, V any] struct {
	keyCodec Codec[K]
	valCodec Codec[V]
}

// MapOf returns a Codec for map[K]V using keyCodec and valCodec for keys and values. The
// encoding is not canonical: callers that need deterministic, order-preserving output over
// maps of the same key type should use [OrderedMap] instead.
func MapOf[K comparable, V any](keyCodec Codec[K], valCodec Codec[V]) Codec[map[K]V] {
	return mapCodec[K, V]{keyCodec, valCodec}
}

func (c mapCodec[K, V]) Encode(w *Writer, value map[K]V) error {
	for k, v := range value {
		w.MarkTerminator()
		if err := c.keyCodec.Encode(w, k); err != nil {
			return err
		}
		if err := c.valCodec.Encode(w, v); err != nil {
			return err
		}
	}
	return w.WriteTerminator()
}

func (c mapCodec[K, V]) Decode(r *Reader) (map[K]V, error) {
	out := make(map[K]V)
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		k, err := c.keyCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		v, err := c.valCodec.Decode(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
}

func (c mapCodec[K, V]) BorrowDecode(r *BorrowReader) (map[K]V, error) {
	keyBorrow, keyOk := c.keyCodec.(BorrowCodec[K])
	valBorrow, valOk := c.valCodec.(BorrowCodec[V])
	out := make(map[K]V)
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		if !keyOk {
			return nil, invalidFormat("map: key Codec does not support borrowed decode")
		}
		k, err := keyBorrow.BorrowDecode(r)
		if err != nil {
			return nil, err
		}
		if !valOk {
			return nil, invalidFormat("map: value Codec does not support borrowed decode")
		}
		v, err := valBorrow.BorrowDecode(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
}

func (mapCodec[K, V]) RequiresTerminator() bool { return true }

// OrderedMap is a map that remembers the key order it was built or decoded with, the
// supplemented counterpart to plain map[K]V. Encoding an OrderedMap in key order (the
// natural order produced by a sorted builder) yields a canonical, order-preserving byte
// string: two OrderedMaps with the same entries in the same order always encode identically,
// and per spec invariant I3 that ordering matches the entries' own ordering when Pairs is
// sorted by key.
type OrderedMap[K comparable, V any] struct {
	Pairs []KV[K, V]
}

// KV is one key/value pair of an [OrderedMap].
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// orderedMapCodec is the Codec for OrderedMap[K, V]: the same pair-sequence framing as
// [mapCodec], but iterating Pairs in its stored order rather than Go's randomized map order,
// per the decode.rs-derived convention documented in SPEC_FULL.md's supplemented-features
// section.
type orderedMapCodec[K comparable, V any] struct {
	keyCodec Codec[K]
	valCodec Codec[V]
}

// OrderedMapOf returns a Codec for OrderedMap[K, V].
func OrderedMapOf[K comparable, V any](keyCodec Codec[K], valCodec Codec[V]) Codec[OrderedMap[K, V]] {
	return orderedMapCodec[K, V]{keyCodec, valCodec}
}

func (c orderedMapCodec[K, V]) Encode(w *Writer, value OrderedMap[K, V]) error {
	for _, pair := range value.Pairs {
		w.MarkTerminator()
		if err := c.keyCodec.Encode(w, pair.Key); err != nil {
			return err
		}
		if err := c.valCodec.Encode(w, pair.Value); err != nil {
			return err
		}
	}
	return w.WriteTerminator()
}

func (c orderedMapCodec[K, V]) Decode(r *Reader) (OrderedMap[K, V], error) {
	var out OrderedMap[K, V]
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		if done {
			return out, nil
		}
		k, err := c.keyCodec.Decode(r)
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		v, err := c.valCodec.Decode(r)
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		out.Pairs = append(out.Pairs, KV[K, V]{k, v})
	}
}

func (c orderedMapCodec[K, V]) BorrowDecode(r *BorrowReader) (OrderedMap[K, V], error) {
	keyBorrow, keyOk := c.keyCodec.(BorrowCodec[K])
	valBorrow, valOk := c.valCodec.(BorrowCodec[V])
	var out OrderedMap[K, V]
	for {
		done, err := r.ReadTerminator()
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		if done {
			return out, nil
		}
		if !keyOk {
			return OrderedMap[K, V]{}, invalidFormat("ordered map: key Codec does not support borrowed decode")
		}
		k, err := keyBorrow.BorrowDecode(r)
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		if !valOk {
			return OrderedMap[K, V]{}, invalidFormat("ordered map: value Codec does not support borrowed decode")
		}
		v, err := valBorrow.BorrowDecode(r)
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		out.Pairs = append(out.Pairs, KV[K, V]{k, v})
	}
}

func (orderedMapCodec[K, V]) RequiresTerminator() bool { return true }
