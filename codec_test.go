package storekey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey"
)

func TestBorrowDecodeFieldDelegatesToUnderlyingCodec(t *testing.T) {
	t.Parallel()
	encoded := storekey.EncodeToBytes(storekey.Uint32(), uint32(42))
	r := storekey.NewBorrowReader(encoded)

	value, err := storekey.BorrowDecodeField[uint32](r, storekey.Uint32())
	require.NoError(t, err)
	require.Equal(t, uint32(42), value)
}

// noBorrowCodec implements Codec[int] but not BorrowCodec[int], the case
// generated BorrowDecode<Name> functions hit if a field's codec never got a borrowed decode
// path of its own.
type noBorrowCodec struct{}

func (noBorrowCodec) Encode(w *storekey.Writer, value int) error {
	return storekey.Int64().Encode(w, int64(value))
}

func (noBorrowCodec) Decode(r *storekey.Reader) (int, error) {
	v, err := storekey.Int64().Decode(r)
	return int(v), err
}

func (noBorrowCodec) RequiresTerminator() bool { return false }

func TestBorrowDecodeFieldRejectsCodecWithoutBorrowSupport(t *testing.T) {
	t.Parallel()
	encoded := storekey.EncodeToBytes[int](noBorrowCodec{}, 7)
	r := storekey.NewBorrowReader(encoded)

	_, err := storekey.BorrowDecodeField[int](r, noBorrowCodec{})
	require.Error(t, err)
}
