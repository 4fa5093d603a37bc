package record

import (
	"testing"

	"github.com/arloliu/unitcode/compress"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/unit"
	"github.com/stretchr/testify/require"
)

func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder(unit.Celsius)
	require.NoError(t, err)
	require.NotNil(t, enc)
	require.Equal(t, 0, enc.Len())
	require.Equal(t, unit.Celsius, enc.header.Unit)
	require.Equal(t, format.CompressionZstd, enc.header.Flag.ValueCompression())
	require.Equal(t, format.TypeRaw, enc.header.Flag.ValueEncoding())
	require.True(t, enc.header.Flag.IsLittleEndian())
}

func TestNewEncoder_InvalidUnit(t *testing.T) {
	for _, u := range []unit.Code{0, 0x0000fff0, unit.KG << unit.SecondaryShift} {
		_, err := NewEncoder(u)
		require.ErrorIs(t, err, errs.ErrInvalidUnit)
	}
}

func TestNewEncoder_Options(t *testing.T) {
	enc, err := NewEncoder(unit.KM|unit.Hour,
		WithBigEndian(),
		WithCompression(format.CompressionS2),
		WithEncoding(format.TypeGorilla),
		WithQuantity("vehicle.speed"),
	)
	require.NoError(t, err)
	require.True(t, enc.header.Flag.IsBigEndian())
	require.Equal(t, format.CompressionS2, enc.header.Flag.ValueCompression())
	require.Equal(t, format.TypeGorilla, enc.header.Flag.ValueEncoding())
	require.Equal(t, hash.ID("vehicle.speed"), enc.header.QuantityID)

	enc, err = NewEncoder(unit.M, WithBigEndian(), WithLittleEndian(), WithQuantity(""))
	require.NoError(t, err)
	require.True(t, enc.header.Flag.IsLittleEndian())
	require.Equal(t, uint64(0), enc.header.QuantityID)

	_, err = NewEncoder(unit.M, WithCompression(format.CompressionType(0x9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = NewEncoder(unit.M, WithEncoding(format.EncodingType(0x2)))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = NewEncoder(unit.M, WithSourceUnit(0))
	require.ErrorIs(t, err, errs.ErrInvalidUnit)
}

func TestEncoder_SharedCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			shared, err := compress.GetCodec(ct)
			require.NoError(t, err)

			enc, err := NewEncoder(unit.KPa, WithCompression(ct))
			require.NoError(t, err)
			require.Equal(t, shared, enc.codec)

			require.NoError(t, enc.AddSlice([]float64{101.3, 101.2, -0.5}))
			data, err := enc.Finish()
			require.NoError(t, err)

			dec, err := NewDecoder(data)
			require.NoError(t, err)
			require.Equal(t, []float64{101.3, 101.2, -0.5}, dec.Values())
		})
	}
}

func TestEncoder_AddAndFinish(t *testing.T) {
	enc, err := NewEncoder(unit.Celsius, WithQuantity("engine.coolant"))
	require.NoError(t, err)

	require.NoError(t, enc.Add(20.5))
	require.NoError(t, enc.AddSlice([]float64{21, 21.5, 22}))
	require.NoError(t, enc.AddSlice(nil))
	require.Equal(t, 4, enc.Len())

	data, err := enc.Finish()
	require.NoError(t, err)
	require.Greater(t, len(data), HeaderSize)

	header, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(4), header.Count)
	require.Equal(t, unit.Celsius, header.Unit)
	require.Equal(t, hash.ID("engine.coolant"), header.QuantityID)
	require.Equal(t, uint32(len(data)-HeaderSize), header.PayloadLength) //nolint:gosec
	require.Equal(t, hash.Checksum(data[HeaderSize:]), header.Checksum)
}

func TestEncoder_UncompressedRawPayload(t *testing.T) {
	enc, err := NewEncoder(unit.M, WithCompression(format.CompressionNone), WithBigEndian())
	require.NoError(t, err)
	require.NoError(t, enc.Add(1.0))

	data, err := enc.Finish()
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+8)
	// 1.0 is 0x3FF0000000000000
	require.Equal(t, []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}, data[HeaderSize:])
}

func TestEncoder_SourceUnit(t *testing.T) {
	enc, err := NewEncoder(unit.Celsius, WithSourceUnit(unit.Fahrenheit), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	input := []float64{32, 212}
	require.NoError(t, enc.AddSlice(input))
	require.NoError(t, enc.Add(-40))
	require.Equal(t, []float64{32, 212}, input)

	data, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	values := dec.Values()
	require.Len(t, values, 3)
	require.InDelta(t, 0, values[0], 1e-9)
	require.InDelta(t, 100, values[1], 1e-9)
	require.InDelta(t, -40, values[2], 1e-9)
}

func TestEncoder_Finished(t *testing.T) {
	enc, err := NewEncoder(unit.M)
	require.NoError(t, err)
	require.NoError(t, enc.Add(1))

	_, err = enc.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, enc.Add(2), errs.ErrEncoderFinished)
	require.ErrorIs(t, enc.AddSlice([]float64{3}), errs.ErrEncoderFinished)
	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestEncoder_NoValues(t *testing.T) {
	enc, err := NewEncoder(unit.M)
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrNoValuesAdded)
}

func TestEncoder_TooManyValues(t *testing.T) {
	enc, err := NewEncoder(unit.M)
	require.NoError(t, err)

	enc.count = MaxValueCount
	require.ErrorIs(t, enc.Add(1), errs.ErrTooManyValues)
	require.ErrorIs(t, enc.AddSlice([]float64{1, 2}), errs.ErrTooManyValues)
	require.Equal(t, uint64(MaxValueCount), enc.count)
}
