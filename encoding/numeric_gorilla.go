package encoding

import (
	"encoding/binary"
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/unitcode/internal/pool"
)

const (
	gorillaMaxLeading = 31 // largest leading-zero count the 5-bit field holds
)

// NumericGorillaEncoder implements the Gorilla XOR compression for float64
// values (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf).
//
// Bytes completes the stream by padding it to a whole byte, so values cannot
// be written after it has been called.
type NumericGorillaEncoder struct {
	w         bitWriter
	prevValue uint64
	leading   int // leading zeros of the current window
	trailing  int // trailing zeros of the current window
	blockSize int // meaningful bits of the current window, 0 before the first
	count     int
	closed    bool
}

var _ ValueEncoder = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a Gorilla encoder.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{
		w: bitWriter{buf: pool.GetRecordBuffer()},
	}
}

func (e *NumericGorillaEncoder) Write(val float64) {
	if e.w.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}
	if e.closed {
		panic("encoder already flushed - cannot write values after Bytes()")
	}

	e.count++
	valBits := math.Float64bits(val)

	if e.count == 1 {
		e.prevValue = valBits
		e.w.writeBits(valBits, 64)

		return
	}

	e.writeXOR(valBits ^ e.prevValue)
	e.prevValue = valBits
}

func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *NumericGorillaEncoder) writeXOR(xor uint64) {
	if xor == 0 {
		e.w.writeBits(0, 1)
		return
	}

	leading := min(bits.LeadingZeros64(xor), gorillaMaxLeading)
	trailing := bits.TrailingZeros64(xor)

	if e.blockSize > 0 && leading >= e.leading && trailing >= e.trailing {
		e.w.writeBits(0b10, 2)
		e.w.writeBits(xor>>e.trailing, e.blockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.w.writeBits(0b11, 2)
	e.w.writeBits(uint64(leading), 5)     //nolint:gosec // 0-31
	e.w.writeBits(uint64(blockSize-1), 6) //nolint:gosec // 0-63
	e.w.writeBits(xor>>trailing, blockSize)

	e.leading = leading
	e.trailing = trailing
	e.blockSize = blockSize
}

// Bytes flushes pending bits and returns the completed stream.
func (e *NumericGorillaEncoder) Bytes() []byte {
	if e.w.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}
	if !e.closed {
		e.w.flush()
		e.closed = true
	}

	return e.w.buf.Bytes()
}

func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the bytes written so far, counting a partially filled byte.
func (e *NumericGorillaEncoder) Size() int {
	if e.w.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.w.buf.Len() + (e.w.n+7)/8
}

func (e *NumericGorillaEncoder) Finish() {
	if e.w.buf == nil {
		return
	}

	pool.PutRecordBuffer(e.w.buf)
	e.w.buf = nil
}

// bitWriter packs bits most significant first into 64-bit words.
type bitWriter struct {
	buf *pool.ByteBuffer
	acc uint64 // pending bits, right-aligned
	n   int    // number of pending bits, always < 64
}

// writeBits appends the low numBits bits of value (1-64).
func (w *bitWriter) writeBits(value uint64, numBits int) {
	if numBits < 64 {
		value &= 1<<numBits - 1
	}

	free := 64 - w.n
	if numBits < free {
		w.acc = w.acc<<numBits | value
		w.n += numBits

		return
	}

	rest := numBits - free
	w.acc = w.acc<<free | value>>rest
	binary.BigEndian.PutUint64(w.buf.ExtendOrGrow(8), w.acc)

	w.acc = value & (1<<rest - 1)
	w.n = rest
}

// flush writes the pending bits left-aligned and zero-padded to a byte.
func (w *bitWriter) flush() {
	if w.n == 0 {
		return
	}

	aligned := w.acc << (64 - w.n)
	numBytes := (w.n + 7) / 8
	out := w.buf.ExtendOrGrow(numBytes)
	for i := range numBytes {
		out[i] = byte(aligned >> (56 - 8*i))
	}

	w.acc = 0
	w.n = 0
}

// NumericGorillaDecoder decodes payloads produced by NumericGorillaEncoder.
// It is stateless and safe for concurrent use.
type NumericGorillaDecoder struct{}

var _ ValueDecoder = NumericGorillaDecoder{}

func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		r := bitReader{data: data}
		prev, ok := r.readBits(64)
		if !ok || !yield(math.Float64frombits(prev)) {
			return
		}

		var trailing, blockSize int
		for i := 1; i < count; i++ {
			changed, ok := r.readBits(1)
			if !ok {
				return
			}

			if changed == 1 {
				newWindow, ok := r.readBits(1)
				if !ok {
					return
				}

				if newWindow == 1 {
					leading, ok := r.readBits(5)
					if !ok {
						return
					}
					size, ok := r.readBits(6)
					if !ok {
						return
					}
					blockSize = int(size) + 1                //nolint:gosec // 1-64
					trailing = 64 - int(leading) - blockSize //nolint:gosec // leading is 0-31
					if trailing < 0 {
						return
					}
				} else if blockSize == 0 {
					return
				}

				meaningful, ok := r.readBits(blockSize)
				if !ok {
					return
				}
				prev ^= meaningful << trailing
			}

			if !yield(math.Float64frombits(prev)) {
				return
			}
		}
	}
}

// At decodes sequentially up to index.
func (d NumericGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, index+1) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}

// bitReader reads bits most significant first.
type bitReader struct {
	data []byte
	pos  int    // next byte to load
	acc  uint64 // loaded bits, left-aligned
	n    int    // number of loaded bits
}

// readBits reads numBits bits (0-64) right-aligned.
func (r *bitReader) readBits(numBits int) (uint64, bool) {
	var out uint64
	for numBits > 0 {
		if r.n == 0 && !r.fill() {
			return 0, false
		}

		take := min(numBits, r.n)
		out = out<<take | r.acc>>(64-take)
		r.acc <<= take
		r.n -= take
		numBits -= take
	}

	return out, true
}

func (r *bitReader) fill() bool {
	remaining := len(r.data) - r.pos
	if remaining <= 0 {
		return false
	}

	if remaining >= 8 {
		r.acc = binary.BigEndian.Uint64(r.data[r.pos:])
		r.pos += 8
		r.n = 64

		return true
	}

	r.acc = 0
	for i := range remaining {
		r.acc |= uint64(r.data[r.pos+i]) << (56 - 8*i)
	}
	r.pos += remaining
	r.n = remaining * 8

	return true
}
