package storekey_test

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey"
	"github.com/surrealdb/storekey/storekeytest"
)

func TestBoolSafeForm(t *testing.T) {
	t.Parallel()
	storekeytest.AssertEncodesTo(t, storekey.Bool(), false, []byte{0x02})
	storekeytest.AssertEncodesTo(t, storekey.Bool(), true, []byte{0x03})
	storekeytest.AssertRoundTrip(t, storekey.Bool(), false)
	storekeytest.AssertRoundTrip(t, storekey.Bool(), true)
	storekeytest.AssertOrdered(t, storekey.Bool(), false, true)
}

func TestLegacyBool(t *testing.T) {
	t.Parallel()
	storekeytest.AssertEncodesTo(t, storekey.LegacyBool(), false, []byte{0x00})
	storekeytest.AssertEncodesTo(t, storekey.LegacyBool(), true, []byte{0x01})
	storekeytest.AssertOrdered(t, storekey.LegacyBool(), false, true)
}

func TestUintRoundTripAndOrder(t *testing.T) {
	t.Parallel()
	storekeytest.AssertRoundTrip(t, storekey.Uint8(), uint8(0))
	storekeytest.AssertRoundTrip(t, storekey.Uint8(), uint8(math.MaxUint8))
	storekeytest.AssertOrdered(t, storekey.Uint8(), uint8(0), uint8(1))
	storekeytest.AssertOrdered(t, storekey.Uint8(), uint8(254), uint8(255))

	storekeytest.AssertRoundTrip(t, storekey.Uint64(), uint64(0))
	storekeytest.AssertRoundTrip(t, storekey.Uint64(), uint64(math.MaxUint64))
	storekeytest.AssertOrdered(t, storekey.Uint64(), uint64(0), uint64(1))
}

func TestIntSignBoundary(t *testing.T) {
	t.Parallel()
	storekeytest.AssertEncodesTo(t, storekey.Int8(), int8(math.MinInt8), []byte{0x00})
	storekeytest.AssertEncodesTo(t, storekey.Int8(), int8(math.MaxInt8), []byte{0xFF})
	storekeytest.AssertOrdered(t, storekey.Int8(), int8(-1), int8(0))
	storekeytest.AssertOrdered(t, storekey.Int8(), int8(-1), int8(1))
	storekeytest.AssertOrdered(t, storekey.Int64(), int64(math.MinInt64), int64(math.MaxInt64))
	storekeytest.AssertRoundTrip(t, storekey.Int32(), int32(-123456))
	storekeytest.AssertRoundTrip(t, storekey.Int32(), int32(123456))
}

func TestFloatOrdering(t *testing.T) {
	t.Parallel()
	codec := storekey.Float64()
	values := []float64{
		math.Inf(-1), -10.0, -1.0, -math.SmallestNonzeroFloat64,
		0.0, math.SmallestNonzeroFloat64, 1.0, 10.0, math.Inf(1),
	}
	for i := 0; i < len(values)-1; i++ {
		storekeytest.AssertOrdered(t, codec, values[i], values[i+1])
	}
	for _, v := range values {
		storekeytest.AssertRoundTrip(t, codec, v)
	}
}

func TestFloatNaNDeterministic(t *testing.T) {
	t.Parallel()
	codec := storekey.Float64()
	nan := math.NaN()
	a := storekey.EncodeToBytes(codec, nan)
	b := storekey.EncodeToBytes(codec, nan)
	require.Equal(t, a, b)
}

func TestChar(t *testing.T) {
	t.Parallel()
	storekeytest.AssertEncodesTo(t, storekey.Char(), 'a', []byte{0x00, 0x00, 0x00, 0x61})
	storekeytest.AssertRoundTrip(t, storekey.Char(), 'a')
	storekeytest.AssertOrdered(t, storekey.Char(), 'a', 'b')

	_, err := storekey.Decode(bytes.NewReader([]byte{0x00, 0x00, 0xD8, 0x00}), storekey.Char())
	require.Error(t, err)
}

// TestConcurrentEncode exercises the claim that distinct Writers over distinct sinks, and
// the stateless Codec values themselves, are safe to use concurrently from separate
// goroutines even though any single Writer/Reader/BorrowReader is not.
func TestConcurrentEncode(t *testing.T) {
	t.Parallel()
	codec := storekey.Uint32()

	var wg sync.WaitGroup
	results := make([][]byte, 100)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = storekey.EncodeToBytes(codec, uint32(i))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want := storekey.EncodeToBytes(codec, uint32(i))
		require.Equal(t, want, got)
	}
}
