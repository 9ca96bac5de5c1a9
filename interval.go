package storekey

// BoundKind identifies which of the three interval-endpoint states a [Bound] holds.
type BoundKind uint8

const (
	// Unbounded means the endpoint places no constraint on the range.
	Unbounded BoundKind = iota
	// Inclusive means the range includes the endpoint value.
	Inclusive
	// Exclusive means the range excludes the endpoint value.
	Exclusive
)

// Bound is one endpoint of a range, the Go shape of the original format's bounded-interval
// type. Value is only meaningful when Kind is Inclusive or Exclusive.
type Bound[T any] struct {
	Value T
	Kind  BoundKind
}

// UnboundedBound returns an endpoint with no constraint.
func UnboundedBound[T any]() Bound[T] {
	return Bound[T]{Kind: Unbounded}
}

// InclusiveBound returns an endpoint that includes value.
func InclusiveBound[T any](value T) Bound[T] {
	return Bound[T]{Value: value, Kind: Inclusive}
}

// ExclusiveBound returns an endpoint that excludes value.
func ExclusiveBound[T any](value T) Bound[T] {
	return Bound[T]{Value: value, Kind: Exclusive}
}

// boundCodec is the Codec for Bound[T]: a three-way tag (tagUnbounded/tagInclusive/
// tagExclusive) followed by the payload when present, per spec section 4.3. The tag values
// are ordered so that, for two bounds at the same endpoint value, inclusive sorts before
// exclusive — the intended half-open range comparison.
type boundCodec[T any] struct {
	elemCodec Codec[T]
}

// BoundOf returns a Codec for Bound[T].
func BoundOf[T any](elemCodec Codec[T]) Codec[Bound[T]] {
	return boundCodec[T]{elemCodec}
}

func (c boundCodec[T]) Encode(w *Writer, value Bound[T]) error {
	switch value.Kind {
	case Unbounded:
		return w.WritePrimitive([]byte{tagUnbounded})
	case Inclusive:
		if err := w.WritePrimitive([]byte{tagInclusive}); err != nil {
			return err
		}
		return c.elemCodec.Encode(w, value.Value)
	case Exclusive:
		if err := w.WritePrimitive([]byte{tagExclusive}); err != nil {
			return err
		}
		return c.elemCodec.Encode(w, value.Value)
	default:
		return invalidFormat("bound: unknown BoundKind %d", value.Kind)
	}
}

func (c boundCodec[T]) Decode(r *Reader) (Bound[T], error) {
	tag, err := r.ReadFixed(1)
	if err != nil {
		return Bound[T]{}, err
	}
	switch tag[0] {
	case tagUnbounded:
		return UnboundedBound[T](), nil
	case tagInclusive:
		v, err := c.elemCodec.Decode(r)
		if err != nil {
			return Bound[T]{}, err
		}
		return InclusiveBound(v), nil
	case tagExclusive:
		v, err := c.elemCodec.Decode(r)
		if err != nil {
			return Bound[T]{}, err
		}
		return ExclusiveBound(v), nil
	default:
		return Bound[T]{}, invalidFormat("bound: unexpected tag %#x", tag[0])
	}
}

func (c boundCodec[T]) BorrowDecode(r *BorrowReader) (Bound[T], error) {
	borrowable, ok := c.elemCodec.(BorrowCodec[T])
	tag, err := r.ReadFixed(1)
	if err != nil {
		return Bound[T]{}, err
	}
	switch tag[0] {
	case tagUnbounded:
		return UnboundedBound[T](), nil
	case tagInclusive, tagExclusive:
		if !ok {
			return Bound[T]{}, invalidFormat("bound: element Codec does not support borrowed decode")
		}
		v, err := borrowable.BorrowDecode(r)
		if err != nil {
			return Bound[T]{}, err
		}
		if tag[0] == tagInclusive {
			return InclusiveBound(v), nil
		}
		return ExclusiveBound(v), nil
	default:
		return Bound[T]{}, invalidFormat("bound: unexpected tag %#x", tag[0])
	}
}

func (boundCodec[T]) RequiresTerminator() bool { return false }
