package record

import (
	"fmt"
	"iter"
	"sync"

	"github.com/arloliu/unitcode/compress"
	"github.com/arloliu/unitcode/convert"
	"github.com/arloliu/unitcode/encoding"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/internal/options"
	"github.com/arloliu/unitcode/unit"
	"github.com/golang/groupcache/lru"
)

// Decoder validates a record and exposes its values.
//
// The payload is verified, decompressed and decoded once by NewDecoder. After
// that the decoder is read-only and safe for concurrent use.
type Decoder struct {
	header       Header
	values       []float64
	originalSize int

	mu    sync.Mutex
	views *lru.Cache
}

// NewDecoder parses and verifies the record in data.
//
// Parameters:
//   - data: Encoded record (header followed by payload)
//   - opts: Optional decoder configuration
//
// Returns:
//   - *Decoder: Decoder holding the decoded values
//   - error: Header errors, ErrPayloadSizeMismatch, ErrChecksumMismatch, a
//     decompression error or ErrValueCountMismatch
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != uint64(header.PayloadLength) {
		return nil, fmt.Errorf("%w: header says %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, header.PayloadLength, len(payload))
	}

	if sum := hash.Checksum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: expected 0x%08x, got 0x%08x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	codec, err := compress.GetCodec(header.Flag.ValueCompression())
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress values: %w", err)
	}

	values, err := decodeValues(header, raw)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		header:       header,
		values:       values,
		originalSize: len(raw),
		views:        lru.New(config.cacheSize),
	}, nil
}

func decodeValues(header Header, raw []byte) ([]float64, error) {
	count := int(header.Count)
	enc := header.Flag.ValueEncoding()

	if enc == format.TypeRaw && uint64(len(raw)) != uint64(header.Count)*8 {
		return nil, fmt.Errorf("%w: %d values need %d bytes, got %d",
			errs.ErrValueCountMismatch, count, uint64(header.Count)*8, len(raw))
	}

	dec, err := encoding.NewValueDecoder(enc, header.Flag.GetEndianEngine())
	if err != nil {
		return nil, err
	}

	// every value takes at least one bit
	capacity := min(count, len(raw)*8)
	values := make([]float64, 0, capacity)
	for v := range dec.All(raw, count) {
		values = append(values, v)
	}

	if len(values) != count {
		return nil, fmt.Errorf("%w: header says %d values, decoded %d", errs.ErrValueCountMismatch, count, len(values))
	}

	return values, nil
}

// Header returns the parsed record header.
func (d *Decoder) Header() Header {
	return d.header
}

// Unit returns the unit code of the stored values.
func (d *Decoder) Unit() unit.Code {
	return d.header.Unit
}

// QuantityID returns the stored quantity hash, 0 for unnamed records.
func (d *Decoder) QuantityID() uint64 {
	return d.header.QuantityID
}

// HasQuantity reports whether the record was tagged with name.
func (d *Decoder) HasQuantity(name string) bool {
	return name != "" && d.header.QuantityID == hash.ID(name)
}

// Len returns the number of values.
func (d *Decoder) Len() int {
	return len(d.values)
}

// Values returns a copy of the values in the record unit.
func (d *Decoder) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

// All returns an iterator over index and value pairs in the record unit.
func (d *Decoder) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range d.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// At returns the value at index i.
//
// Returns:
//   - float64: Value in the record unit
//   - error: ErrIndexOutOfRange when i is outside [0, Len())
func (d *Decoder) At(i int) (float64, error) {
	if i < 0 || i >= len(d.values) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrIndexOutOfRange, i, len(d.values))
	}

	return d.values[i], nil
}

// ValuesIn returns a copy of the values converted into target. Converted
// views are cached per target; the returned slice is always the caller's.
func (d *Decoder) ValuesIn(target unit.Code) []float64 {
	if target == d.header.Unit {
		return d.Values()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	view, ok := d.cachedView(target)
	if !ok {
		view = convert.Slice(nil, d.values, d.header.Unit, target)
		d.views.Add(target, view)
	}

	out := make([]float64, len(view))
	copy(out, view)

	return out
}

// cachedView must be called with mu held.
func (d *Decoder) cachedView(target unit.Code) ([]float64, bool) {
	cached, ok := d.views.Get(target)
	if !ok {
		return nil, false
	}
	view, ok := cached.([]float64)

	return view, ok
}

// Stats reports how much the payload shrank under its compression.
func (d *Decoder) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      d.header.Flag.ValueCompression(),
		OriginalSize:   int64(d.originalSize),
		CompressedSize: int64(d.header.PayloadLength),
	}
}
