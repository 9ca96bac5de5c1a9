package storekey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeAppendMatchesWriterVariableBytes(t *testing.T) {
	t.Parallel()
	value := []byte{0x05, terminator, 0x07, escapePrefix, 0x09}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteVariableBytes(value))

	// escapeAppend is the Append-style counterpart to Writer.WriteVariableBytes; a test
	// fixture built with it should match the streaming Writer's output byte for byte.
	fixture := escapeAppend(nil, value)
	require.Equal(t, buf.Bytes(), fixture)
}

func TestUnescapeRoundTripsEscapeAppend(t *testing.T) {
	t.Parallel()
	value := []byte{0x00, 0x01, 0xFF}
	encoded := escapeAppend(nil, value)

	decoded, rest := unescape(encoded)
	require.Equal(t, value, decoded)
	require.Empty(t, rest)
}

func TestUnescapeLeavesTrailingBytes(t *testing.T) {
	t.Parallel()
	encoded := escapeAppend(nil, []byte("abc"))
	encoded = append(encoded, 0xAA, 0xBB)

	decoded, rest := unescape(encoded)
	require.Equal(t, []byte("abc"), decoded)
	require.Equal(t, []byte{0xAA, 0xBB}, rest)
}

func TestUnescapePanicsOnUnterminatedInput(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		unescape([]byte{0x01, 0x02})
	})
}
