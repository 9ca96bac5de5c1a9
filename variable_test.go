package storekey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey"
	"github.com/surrealdb/storekey/storekeytest"
)

func TestStringRoundTripAndOrder(t *testing.T) {
	t.Parallel()
	codec := storekey.String()
	storekeytest.AssertEncodesTo(t, codec, "foo", []byte{0x66, 0x6f, 0x6f, 0x00})
	storekeytest.AssertEncodesTo(t, codec, "", []byte{0x00})
	storekeytest.AssertRoundTrip(t, codec, "foo")
	storekeytest.AssertRoundTrip(t, codec, "")
	storekeytest.AssertOrdered(t, codec, "a", "b")
	storekeytest.AssertOrdered(t, codec, "\x00", "\x00\x00")
	storekeytest.AssertOrdered(t, codec, "\x00", "\x01")
	storekeytest.AssertOrdered(t, codec, "a\x00", "a\x01")
}

func TestBytesEscaping(t *testing.T) {
	t.Parallel()
	codec := storekey.Bytes()
	storekeytest.AssertEncodesTo(t, codec, []byte{0x00, 0x01}, []byte{0x01, 0x00, 0x01, 0x01, 0x00})
	storekeytest.AssertRoundTrip(t, codec, []byte{0x00, 0x01})
	storekeytest.AssertOrdered(t, codec, []byte{0}, []byte{1})
	storekeytest.AssertOrdered(t, codec, []byte{0}, []byte{0, 0})
	storekeytest.AssertOrdered(t, codec, []byte{0, 1}, []byte{255})
}

func TestBytesReferenceBorrowsWhenUnescaped(t *testing.T) {
	t.Parallel()
	codec := storekey.BytesReference()
	encoded := storekey.EncodeToBytes(codec, []byte("hello"))
	ref, err := storekey.DecodeBorrowReference(encoded, codec)
	require.NoError(t, err)
	require.True(t, ref.Borrowed())
	require.Equal(t, []byte("hello"), ref.Value())
}

func TestBytesReferenceOwnsWhenEscaped(t *testing.T) {
	t.Parallel()
	codec := storekey.BytesReference()
	encoded := storekey.EncodeToBytes(codec, []byte{0x00, 0x01, 'x'})
	ref, err := storekey.DecodeBorrowReference(encoded, codec)
	require.NoError(t, err)
	require.False(t, ref.Borrowed())
	require.Equal(t, []byte{0x00, 0x01, 'x'}, ref.Value())
}

func TestStringReferenceRoundTrip(t *testing.T) {
	t.Parallel()
	codec := storekey.StringReference()
	for _, s := range []string{"", "plain", "with\x00escape"} {
		encoded := storekey.EncodeToBytes(codec, s)
		ref, err := storekey.DecodeBorrowReference(encoded, codec)
		require.NoError(t, err)
		require.Equal(t, s, ref.Value())
	}
}

