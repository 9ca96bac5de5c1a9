package storekey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterEscapesOnlyWhenPending(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := NewWriter(&buf)

	// Without MarkTerminator, a byte <= escapePrefix is written raw.
	require.NoError(t, w.WritePrimitive([]byte{0x00}))
	require.Equal(t, []byte{0x00}, buf.Bytes())

	buf.Reset()
	w = NewWriter(&buf)
	w.MarkTerminator()
	require.NoError(t, w.WritePrimitive([]byte{0x00}))
	require.Equal(t, []byte{escapePrefix, 0x00}, buf.Bytes())
}

func TestWriterMarkTerminatorClearsAfterOneWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.MarkTerminator()
	require.NoError(t, w.WritePrimitive([]byte{0xFF}))
	require.NoError(t, w.WritePrimitive([]byte{0x00}))
	require.Equal(t, []byte{0xFF, 0x00}, buf.Bytes())
}

func TestReaderReadTerminatorSetsExpectEscapeUnconditionally(t *testing.T) {
	t.Parallel()
	r := NewReader(bytes.NewReader([]byte{escapePrefix, 0x00}))
	done, err := r.ReadTerminator()
	require.NoError(t, err)
	require.False(t, done)
	require.True(t, r.expectEscape)
	data, err := r.ReadFixed(1)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, data)
}

func TestBorrowReaderReadReferenceBorrowsWithoutEscape(t *testing.T) {
	t.Parallel()
	input := []byte("abc\x00rest")
	r := NewBorrowReader(input)
	ref, err := r.ReadReference()
	require.NoError(t, err)
	require.True(t, ref.Borrowed())
	require.Equal(t, []byte("abc"), ref.Value())
}

func TestBorrowReaderReadReferenceCopiesOnEscape(t *testing.T) {
	t.Parallel()
	input := []byte{'a', escapePrefix, 0x00, 'b', 0x00}
	r := NewBorrowReader(input)
	ref, err := r.ReadReference()
	require.NoError(t, err)
	require.False(t, ref.Borrowed())
	require.Equal(t, []byte{'a', 0x00, 'b'}, ref.Value())
}

func TestEscapedViewIterUnescapesLazily(t *testing.T) {
	t.Parallel()
	r := NewBorrowReader([]byte{'a', escapePrefix, 0x01, 'b', 0x00})
	view, err := r.ReadEscapedView()
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 0x01, 'b'}, view.Bytes())
}

func TestWritePreEscapedReserializesEscapedSliceUnchanged(t *testing.T) {
	t.Parallel()
	original := []byte{'a', escapePrefix, 0x01, 'b', 0x00}
	r := NewBorrowReader(original)
	view, err := r.ReadEscapedView()
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePreEscaped(view.Raw()))
	require.Equal(t, original, buf.Bytes())
}

func TestWritePreEscapedReserializesEscapedStrUnchanged(t *testing.T) {
	t.Parallel()
	original := []byte("foo\x01\x00bar\x00")
	r := NewBorrowReader(original)
	view, err := r.ReadEscapedStr()
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePreEscaped(view.Raw()))
	require.Equal(t, original, buf.Bytes())
}
