// Package storekeytest provides golden-byte-string assertions for testing storekey.Codec
// implementations, built on testify the way the rest of this module's tests are.
package storekeytest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey"
)

// AssertEncodesTo asserts that encoding value with codec produces exactly want.
func AssertEncodesTo[T any](t *testing.T, codec storekey.Codec[T], value T, want []byte) {
	t.Helper()
	got := storekey.EncodeToBytes(codec, value)
	require.Equal(t, want, got, "encoding did not match expected bytes")
}

// AssertRoundTrip asserts that decoding the encoding of value reproduces an equal value, and
// that re-encoding the decoded value reproduces the same bytes (spec invariant I4).
func AssertRoundTrip[T any](t *testing.T, codec storekey.Codec[T], value T) {
	t.Helper()
	encoded := storekey.EncodeToBytes(codec, value)
	decoded, err := storekey.DecodeBorrow(encoded, requireBorrowCodec(t, codec))
	require.NoError(t, err)
	require.Equal(t, value, decoded)
	reencoded := storekey.EncodeToBytes(codec, decoded)
	require.Equal(t, encoded, reencoded)
}

// AssertOrdered asserts that encode(a) sorts strictly before encode(b) under lexicographic
// byte comparison, per spec invariant I3.
func AssertOrdered[T any](t *testing.T, codec storekey.Codec[T], a, b T) {
	t.Helper()
	encodedA := storekey.EncodeToBytes(codec, a)
	encodedB := storekey.EncodeToBytes(codec, b)
	require.Truef(t, lexLess(encodedA, encodedB),
		"expected encode(a)=%x < encode(b)=%x", encodedA, encodedB)
}

func lexLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func requireBorrowCodec[T any](t *testing.T, codec storekey.Codec[T]) storekey.BorrowCodec[T] {
	t.Helper()
	borrowable, ok := codec.(storekey.BorrowCodec[T])
	require.True(t, ok, "codec does not implement BorrowCodec")
	return borrowable
}
