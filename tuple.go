package storekey

// Pair is a 2-tuple, the Go shape of the original format's tuple types. Fields are encoded
// back-to-back in declared order with no separators, per spec section 4.3; Go's lack of
// variadic generics means each arity gets its own named type rather than a single tuple
// macro, mirroring the original crate's tuple impls generated for sizes up to 6.
type Pair[A, B any] struct {
	First  A
	Second B
}

type pairCodec[A, B any] struct {
	a Codec[A]
	b Codec[B]
}

// PairOf returns a Codec for Pair[A, B].
func PairOf[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	return pairCodec[A, B]{a, b}
}

func (c pairCodec[A, B]) Encode(w *Writer, value Pair[A, B]) error {
	if err := c.a.Encode(w, value.First); err != nil {
		return err
	}
	return c.b.Encode(w, value.Second)
}

func (c pairCodec[A, B]) Decode(r *Reader) (Pair[A, B], error) {
	first, err := c.a.Decode(r)
	if err != nil {
		return Pair[A, B]{}, err
	}
	second, err := c.b.Decode(r)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{first, second}, nil
}

func (c pairCodec[A, B]) BorrowDecode(r *BorrowReader) (Pair[A, B], error) {
	aBorrow, aOk := c.a.(BorrowCodec[A])
	bBorrow, bOk := c.b.(BorrowCodec[B])
	if !aOk || !bOk {
		return Pair[A, B]{}, invalidFormat("pair: element Codec does not support borrowed decode")
	}
	first, err := aBorrow.BorrowDecode(r)
	if err != nil {
		return Pair[A, B]{}, err
	}
	second, err := bBorrow.BorrowDecode(r)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{first, second}, nil
}

func (pairCodec[A, B]) RequiresTerminator() bool { return false }

// Triple is a 3-tuple; see [Pair].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type tripleCodec[A, B, C any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
}

// TripleOf returns a Codec for Triple[A, B, C].
func TripleOf[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	return tripleCodec[A, B, C]{a, b, c}
}

func (t tripleCodec[A, B, C]) Encode(w *Writer, value Triple[A, B, C]) error {
	if err := t.a.Encode(w, value.First); err != nil {
		return err
	}
	if err := t.b.Encode(w, value.Second); err != nil {
		return err
	}
	return t.c.Encode(w, value.Third)
}

func (t tripleCodec[A, B, C]) Decode(r *Reader) (Triple[A, B, C], error) {
	first, err := t.a.Decode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	second, err := t.b.Decode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	third, err := t.c.Decode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	return Triple[A, B, C]{first, second, third}, nil
}

func (t tripleCodec[A, B, C]) BorrowDecode(r *BorrowReader) (Triple[A, B, C], error) {
	aBorrow, aOk := t.a.(BorrowCodec[A])
	bBorrow, bOk := t.b.(BorrowCodec[B])
	cBorrow, cOk := t.c.(BorrowCodec[C])
	if !aOk || !bOk || !cOk {
		return Triple[A, B, C]{}, invalidFormat("triple: element Codec does not support borrowed decode")
	}
	first, err := aBorrow.BorrowDecode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	second, err := bBorrow.BorrowDecode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	third, err := cBorrow.BorrowDecode(r)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	return Triple[A, B, C]{first, second, third}, nil
}

func (tripleCodec[A, B, C]) RequiresTerminator() bool { return false }
