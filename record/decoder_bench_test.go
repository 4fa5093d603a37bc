package record

import (
	"testing"

	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/unit"
	"github.com/stretchr/testify/require"
)

func BenchmarkDecoder(b *testing.B) {
	values := testSeries(1000)

	enc, err := NewEncoder(unit.Celsius, WithEncoding(format.TypeGorilla))
	require.NoError(b, err)
	require.NoError(b, enc.AddSlice(values))
	data, err := enc.Finish()
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		dec, err := NewDecoder(data)
		if err != nil {
			b.Fatal(err)
		}
		_ = dec.ValuesIn(unit.Fahrenheit)
	}
}
