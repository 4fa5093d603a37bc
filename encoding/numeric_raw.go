package encoding

import (
	"iter"
	"math"
	"unsafe"

	"github.com/arloliu/unitcode/endian"
	"github.com/arloliu/unitcode/internal/pool"
)

const float64Size = 8

// NumericRawEncoder stores each value as its 8-byte IEEE 754 representation
// in the engine's byte order.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ValueEncoder = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw encoder writing in engine's byte order.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetRecordBuffer(),
	}
}

// Write panics if Finish has been called.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.engine.PutUint64(e.buf.ExtendOrGrow(float64Size), math.Float64bits(val))
}

// WriteSlice grows the buffer once for the whole slice. It panics if Finish
// has been called.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	region := e.buf.ExtendOrGrow(len(values) * float64Size)
	for i, v := range values {
		e.engine.PutUint64(region[i*float64Size:], math.Float64bits(v))
	}
}

func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

func (e *NumericRawEncoder) Len() int {
	return e.count
}

func (e *NumericRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

func (e *NumericRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutRecordBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// NumericRawDecoder decodes payloads produced by NumericRawEncoder.
//
// The decoder is an immutable value; copying it is cheap.
type NumericRawDecoder struct {
	engine endian.EndianEngine
	native bool
}

var _ ValueDecoder = NumericRawDecoder{}

// NewNumericRawDecoder creates a raw decoder for payloads in engine's byte
// order.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{
		engine: engine,
		native: endian.CompareNativeEndian(engine),
	}
}

func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*float64Size {
			return
		}

		if floats, ok := d.mapNative(data[:count*float64Size]); ok {
			for _, v := range floats {
				if !yield(v) {
					return
				}
			}

			return
		}

		for i := range count {
			start := i * float64Size
			if !yield(math.Float64frombits(d.engine.Uint64(data[start : start+float64Size]))) {
				return
			}
		}
	}
}

func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * float64Size
	if start+float64Size > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+float64Size])), true
}

// mapNative reinterprets data as []float64 without copying when the payload
// is in host byte order and 8-byte aligned.
func (d NumericRawDecoder) mapNative(data []byte) ([]float64, bool) {
	if !d.native || len(data) == 0 {
		return nil, false
	}

	ptr := unsafe.Pointer(&data[0])
	if uintptr(ptr)%unsafe.Alignof(float64(0)) != 0 {
		return nil, false
	}

	return unsafe.Slice((*float64)(ptr), len(data)/float64Size), true
}
