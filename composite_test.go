package storekey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey"
	"github.com/surrealdb/storekey/storekeytest"
)

func TestOption(t *testing.T) {
	t.Parallel()
	codec := storekey.OptionOf(storekey.Uint8())

	storekeytest.AssertEncodesTo(t, codec, nil, []byte{0x02})
	five := uint8(5)
	storekeytest.AssertEncodesTo(t, codec, &five, []byte{0x03, 0x05})
	storekeytest.AssertRoundTrip(t, codec, (*uint8)(nil))
	storekeytest.AssertRoundTrip(t, codec, &five)
}

func TestResult(t *testing.T) {
	t.Parallel()
	codec := storekey.ResultOf(storekey.Uint8(), storekey.String())

	ok := storekey.Ok[uint8, string](5)
	storekeytest.AssertEncodesTo(t, codec, ok, []byte{0x02, 0x05})
	storekeytest.AssertRoundTrip(t, codec, ok)

	failed := storekey.Err[uint8, string]("bad")
	storekeytest.AssertRoundTrip(t, codec, failed)
}

func TestBoundThreeWayTag(t *testing.T) {
	t.Parallel()
	codec := storekey.BoundOf(storekey.Uint32())

	storekeytest.AssertEncodesTo(t, codec, storekey.UnboundedBound[uint32](), []byte{0x02})
	storekeytest.AssertRoundTrip(t, codec, storekey.InclusiveBound[uint32](7))
	storekeytest.AssertRoundTrip(t, codec, storekey.ExclusiveBound[uint32](7))

	// Inclusive sorts before exclusive at the same endpoint value.
	storekeytest.AssertOrdered(t, codec, storekey.InclusiveBound[uint32](7), storekey.ExclusiveBound[uint32](7))
}

func TestSliceOfUint8(t *testing.T) {
	t.Parallel()
	codec := storekey.SliceOf(storekey.Uint8())

	storekeytest.AssertEncodesTo(t, codec, []uint8{}, []byte{0x00})
	storekeytest.AssertRoundTrip(t, codec, []uint8{1, 2, 3})
	storekeytest.AssertRoundTrip(t, codec, []uint8(nil))
}

func TestSliceOfStringsHandlesEscapeInsideElement(t *testing.T) {
	t.Parallel()
	codec := storekey.SliceOf(storekey.String())
	storekeytest.AssertRoundTrip(t, codec, []string{"foo", "", "has\x00nul"})
}

func TestMapOfRoundTrips(t *testing.T) {
	t.Parallel()
	codec := storekey.MapOf(storekey.String(), storekey.Uint32()).(storekey.BorrowCodec[map[string]uint32])
	value := map[string]uint32{"a": 1, "b": 2}
	encoded := storekey.EncodeToBytes(codec, value)
	decoded, err := storekey.DecodeBorrow(encoded, codec)
	require.NoError(t, err)
	require.Equal(t, value, decoded)
}

func TestOrderedMapCanonicalOrdering(t *testing.T) {
	t.Parallel()
	codec := storekey.OrderedMapOf(storekey.String(), storekey.Uint32())
	small := storekey.OrderedMap[string, uint32]{Pairs: []storekey.KV[string, uint32]{
		{Key: "a", Value: 1},
	}}
	large := storekey.OrderedMap[string, uint32]{Pairs: []storekey.KV[string, uint32]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}}
	storekeytest.AssertOrdered(t, codec, small, large)
	storekeytest.AssertRoundTrip(t, codec, large)
}

func TestArrayOfFixedLength(t *testing.T) {
	t.Parallel()
	codec := storekey.ArrayOf(storekey.Uint8(), 3)
	storekeytest.AssertRoundTrip(t, codec, []uint8{1, 2, 3})

	err := storekey.Encode(nil, codec, []uint8{1, 2})
	require.Error(t, err)
}

func TestPairAndTriple(t *testing.T) {
	t.Parallel()
	pairCodec := storekey.PairOf(storekey.Uint8(), storekey.String())
	storekeytest.AssertRoundTrip(t, pairCodec, storekey.Pair[uint8, string]{First: 7, Second: "x"})

	tripleCodec := storekey.TripleOf(storekey.Uint8(), storekey.String(), storekey.Bool())
	storekeytest.AssertRoundTrip(t, tripleCodec,
		storekey.Triple[uint8, string, bool]{First: 7, Second: "x", Third: true})
}

func TestPointerToIsTransparent(t *testing.T) {
	t.Parallel()
	codec := storekey.PointerTo(storekey.Uint8())
	value := uint8(9)
	plain := storekey.EncodeToBytes(storekey.Uint8(), value)
	boxed := storekey.EncodeToBytes(codec, &value)
	require.Equal(t, plain, boxed)
	storekeytest.AssertRoundTrip(t, codec, &value)
}

func TestRecordOfTwoEmptyStrings(t *testing.T) {
	t.Parallel()
	codec := storekey.PairOf(storekey.String(), storekey.String()).(storekey.BorrowCodec[storekey.Pair[string, string]])
	decoded, err := storekey.DecodeBorrow([]byte("\x00\x00"), codec)
	require.NoError(t, err)
	require.Equal(t, storekey.Pair[string, string]{First: "", Second: ""}, decoded)

	decoded, err = storekey.DecodeBorrow([]byte("foo\x00test\x00"), codec)
	require.NoError(t, err)
	require.Equal(t, storekey.Pair[string, string]{First: "foo", Second: "test"}, decoded)
}

func TestDiscriminantWidthForFourByteCase(t *testing.T) {
	t.Parallel()
	// Ok::<u8,()>(5) using a 4-byte discriminant.
	var buf byteBuffer
	w := storekey.NewWriter(&buf)
	require.NoError(t, storekey.WriteDiscriminant(w, 0, 70000))
	require.NoError(t, storekey.Uint8().Encode(w, 5))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x05}, buf.data)
}

type byteBuffer struct{ data []byte }

func (b *byteBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
