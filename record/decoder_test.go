package record

import (
	"math"
	"sync"
	"testing"

	"github.com/arloliu/unitcode/convert"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/unit"
	"github.com/stretchr/testify/require"
)

func testSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 20 + 5*math.Sin(float64(i)/10)
	}

	return values
}

func encodeRecord(t *testing.T, u unit.Code, values []float64, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(u, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.AddSlice(values))

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}

func TestDecoder_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	encodings := []format.EncodingType{format.TypeRaw, format.TypeGorilla}
	endians := map[string]EncoderOption{
		"little": WithLittleEndian(),
		"big":    WithBigEndian(),
	}

	values := testSeries(500)
	values = append(values, 0, -0.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1))

	for _, comp := range compressions {
		for _, enc := range encodings {
			for name, order := range endians {
				t.Run(comp.String()+"/"+enc.String()+"/"+name, func(t *testing.T) {
					data := encodeRecord(t, unit.KM|unit.Hour, values,
						WithCompression(comp), WithEncoding(enc), order)

					dec, err := NewDecoder(data)
					require.NoError(t, err)
					require.Equal(t, unit.KM|unit.Hour, dec.Unit())
					require.Equal(t, len(values), dec.Len())
					require.Equal(t, values, dec.Values())
					require.Equal(t, comp, dec.Header().Flag.ValueCompression())
					require.Equal(t, enc, dec.Header().Flag.ValueEncoding())
				})
			}
		}
	}
}

func TestDecoder_NaN(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		data := encodeRecord(t, unit.Percent, []float64{1, math.NaN(), 2}, WithEncoding(enc))

		dec, err := NewDecoder(data)
		require.NoError(t, err)

		v, err := dec.At(1)
		require.NoError(t, err)
		require.True(t, math.IsNaN(v))
	}
}

func TestDecoder_Accessors(t *testing.T) {
	values := []float64{1.5, 2.5, 3.5}
	data := encodeRecord(t, unit.Mile, values, WithQuantity("trip.distance"))

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	require.Equal(t, hash.ID("trip.distance"), dec.QuantityID())
	require.True(t, dec.HasQuantity("trip.distance"))
	require.False(t, dec.HasQuantity("trip.duration"))
	require.False(t, dec.HasQuantity(""))

	v, err := dec.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	_, err = dec.At(3)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = dec.At(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	var got []float64
	for i, v := range dec.All() {
		require.Equal(t, len(got), i)
		got = append(got, v)
	}
	require.Equal(t, values, got)

	for i := range dec.All() {
		if i == 1 {
			break
		}
	}

	copied := dec.Values()
	copied[0] = 99
	require.Equal(t, values, dec.Values())
}

func TestDecoder_UnnamedRecord(t *testing.T) {
	data := encodeRecord(t, unit.Mile, []float64{1})

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, uint64(0), dec.QuantityID())
	require.False(t, dec.HasQuantity("anything"))
}

func TestDecoder_ValuesIn(t *testing.T) {
	values := testSeries(100)
	data := encodeRecord(t, unit.Celsius, values, WithEncoding(format.TypeGorilla))

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	want := convert.Slice(nil, values, unit.Celsius, unit.Fahrenheit)
	require.Equal(t, want, dec.ValuesIn(unit.Fahrenheit))

	// cached view is not shared with callers
	got := dec.ValuesIn(unit.Fahrenheit)
	got[0] = -1
	require.Equal(t, want, dec.ValuesIn(unit.Fahrenheit))
	require.Equal(t, 1, dec.views.Len())

	require.Equal(t, values, dec.ValuesIn(unit.Celsius))
	require.Equal(t, 1, dec.views.Len())

	require.Equal(t, convert.Slice(nil, values, unit.Celsius, unit.Kelvin), dec.ValuesIn(unit.Kelvin))
	require.Equal(t, 2, dec.views.Len())
}

func TestDecoder_CacheSize(t *testing.T) {
	data := encodeRecord(t, unit.M, []float64{1000, 2000})

	dec, err := NewDecoder(data, WithCacheSize(1))
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2}, dec.ValuesIn(unit.KM))
	require.InDeltaSlice(t, []float64{100000, 200000}, dec.ValuesIn(unit.CM), 1e-6)
	require.Equal(t, 1, dec.views.Len())

	_, err = NewDecoder(data, WithCacheSize(0))
	require.Error(t, err)
}

func TestDecoder_ConcurrentValuesIn(t *testing.T) {
	values := testSeries(200)
	data := encodeRecord(t, unit.Celsius, values)

	dec, err := NewDecoder(data, WithCacheSize(2))
	require.NoError(t, err)

	targets := []unit.Code{unit.Fahrenheit, unit.Kelvin, unit.Rankine}
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(target unit.Code) {
			defer wg.Done()
			for range 50 {
				got := dec.ValuesIn(target)
				if len(got) != len(values) {
					t.Errorf("got %d values, want %d", len(got), len(values))
					return
				}
			}
		}(targets[i%len(targets)])
	}
	wg.Wait()
}

func TestDecoder_Stats(t *testing.T) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = 42
	}

	data := encodeRecord(t, unit.Watt, values, WithCompression(format.CompressionZstd))

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	stats := dec.Stats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(8000), stats.OriginalSize)
	require.Equal(t, int64(len(data)-HeaderSize), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 0.1)
}

func TestDecoder_Corruption(t *testing.T) {
	values := testSeries(64)

	t.Run("short header", func(t *testing.T) {
		_, err := NewDecoder(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := encodeRecord(t, unit.M, values)
		data[1] = 0xEA
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("unknown compression", func(t *testing.T) {
		data := encodeRecord(t, unit.M, values)
		data[2] = 0x7
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data := encodeRecord(t, unit.M, values)
		_, err := NewDecoder(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		data := encodeRecord(t, unit.M, values)
		_, err := NewDecoder(append(data, 0))
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		data := encodeRecord(t, unit.M, values)
		data[HeaderSize+3] ^= 0xFF
		_, err := NewDecoder(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		t.Run("count mismatch "+enc.String(), func(t *testing.T) {
			data := encodeRecord(t, unit.M, values, WithEncoding(enc), WithCompression(format.CompressionNone))

			header, err := ParseHeader(data)
			require.NoError(t, err)
			header.Count *= 4
			copy(data, header.Bytes())

			_, err = NewDecoder(data)
			require.ErrorIs(t, err, errs.ErrValueCountMismatch)
		})
	}
}
