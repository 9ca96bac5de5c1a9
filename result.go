package storekey

// Result is the Go shape of the original format's two-variant ok/err type: Go has no
// builtin sum type, so Result is a small tagged struct with exactly one of Ok/Err
// meaningful, selected by IsOk. It exists so the "result-like" framing in spec section 4.3
// has a concrete, directly encodable type rather than only existing as a pattern callers
// must hand-roll with (error, T) pairs.
type Result[O, E any] struct {
	ok   O
	err  E
	isOk bool
}

// Ok returns a Result in the ok state.
func Ok[O, E any](value O) Result[O, E] {
	return Result[O, E]{ok: value, isOk: true}
}

// Err returns a Result in the err state.
func Err[O, E any](value E) Result[O, E] {
	return Result[O, E]{err: value, isOk: false}
}

// IsOk reports whether the Result is in the ok state.
func (r Result[O, E]) IsOk() bool { return r.isOk }

// Unwrap returns the ok value and true if the Result is in the ok state.
func (r Result[O, E]) Unwrap() (O, bool) {
	return r.ok, r.isOk
}

// UnwrapErr returns the err value and true if the Result is in the err state.
func (r Result[O, E]) UnwrapErr() (E, bool) {
	return r.err, !r.isOk
}

// resultCodec is the Codec for Result[O, E]: a single discriminant byte (tagOk/tagErr)
// followed by the payload, exactly mirroring [optionCodec].
type resultCodec[O, E any] struct {
	okCodec  Codec[O]
	errCodec Codec[E]
}

// ResultOf returns a Codec for Result[O, E].
func ResultOf[O, E any](okCodec Codec[O], errCodec Codec[E]) Codec[Result[O, E]] {
	return resultCodec[O, E]{okCodec, errCodec}
}

func (c resultCodec[O, E]) Encode(w *Writer, value Result[O, E]) error {
	if value.isOk {
		if err := w.WritePrimitive([]byte{tagOk}); err != nil {
			return err
		}
		return c.okCodec.Encode(w, value.ok)
	}
	if err := w.WritePrimitive([]byte{tagErr}); err != nil {
		return err
	}
	return c.errCodec.Encode(w, value.err)
}

func (c resultCodec[O, E]) Decode(r *Reader) (Result[O, E], error) {
	tag, err := r.ReadFixed(1)
	if err != nil {
		return Result[O, E]{}, err
	}
	switch tag[0] {
	case tagOk:
		v, err := c.okCodec.Decode(r)
		if err != nil {
			return Result[O, E]{}, err
		}
		return Ok[O, E](v), nil
	case tagErr:
		v, err := c.errCodec.Decode(r)
		if err != nil {
			return Result[O, E]{}, err
		}
		return Err[O, E](v), nil
	default:
		return Result[O, E]{}, invalidFormat("result: unexpected tag %#x", tag[0])
	}
}

func (c resultCodec[O, E]) BorrowDecode(r *BorrowReader) (Result[O, E], error) {
	okBorrow, okOk := c.okCodec.(BorrowCodec[O])
	errBorrow, errOk := c.errCodec.(BorrowCodec[E])
	tag, err := r.ReadFixed(1)
	if err != nil {
		return Result[O, E]{}, err
	}
	switch tag[0] {
	case tagOk:
		if !okOk {
			return Result[O, E]{}, invalidFormat("result: ok Codec does not support borrowed decode")
		}
		v, err := okBorrow.BorrowDecode(r)
		if err != nil {
			return Result[O, E]{}, err
		}
		return Ok[O, E](v), nil
	case tagErr:
		if !errOk {
			return Result[O, E]{}, invalidFormat("result: err Codec does not support borrowed decode")
		}
		v, err := errBorrow.BorrowDecode(r)
		if err != nil {
			return Result[O, E]{}, err
		}
		return Err[O, E](v), nil
	default:
		return Result[O, E]{}, invalidFormat("result: unexpected tag %#x", tag[0])
	}
}

func (resultCodec[O, E]) RequiresTerminator() bool { return false }
