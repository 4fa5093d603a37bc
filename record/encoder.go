package record

import (
	"fmt"
	"math"

	"github.com/arloliu/unitcode/compress"
	"github.com/arloliu/unitcode/convert"
	"github.com/arloliu/unitcode/encoding"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/internal/options"
	"github.com/arloliu/unitcode/internal/pool"
	"github.com/arloliu/unitcode/unit"
)

// MaxValueCount is the maximum number of values a single record can hold.
const MaxValueCount = math.MaxUint32

// Encoder builds a single measurement record.
//
// Values are encoded as they are added; Finish compresses the payload and
// prepends the header.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must be created for further encoding.
type Encoder struct {
	*encoderConfig
	valEncoder encoding.ValueEncoder
	codec      compress.Codec
	count      uint64
	finished   bool
}

// NewEncoder creates an encoder for values expressed in unit u.
//
// Parameters:
//   - u: Unit code of the stored values (must be valid)
//   - opts: Optional encoding configuration (endianness, compression, encoding, quantity, source unit)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: ErrInvalidUnit, or a configuration error if invalid options provided
func NewEncoder(u unit.Code, opts ...EncoderOption) (*Encoder, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidUnit, u)
	}

	config := newEncoderConfig(u)
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(config.header.Flag.ValueCompression())
	if err != nil {
		return nil, err
	}

	valEncoder, err := encoding.NewValueEncoder(config.header.Flag.ValueEncoding(), config.engine)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		encoderConfig: config,
		valEncoder:    valEncoder,
		codec:         codec,
	}, nil
}

// Add appends a single value.
//
// Returns:
//   - error: ErrEncoderFinished after Finish, ErrTooManyValues past MaxValueCount
func (e *Encoder) Add(value float64) error {
	if err := e.reserve(1); err != nil {
		return err
	}

	if e.sourceUnit != 0 {
		value = convert.Convert(value, e.sourceUnit, e.header.Unit)
	}
	e.valEncoder.Write(value)

	return nil
}

// AddSlice appends values in order. The input slice is not modified.
//
// Returns:
//   - error: ErrEncoderFinished after Finish, ErrTooManyValues past MaxValueCount
func (e *Encoder) AddSlice(values []float64) error {
	if err := e.reserve(len(values)); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	if e.sourceUnit == 0 {
		e.valEncoder.WriteSlice(values)
		return nil
	}

	scratch, cleanup := pool.GetFloat64Slice(len(values))
	defer cleanup()

	e.valEncoder.WriteSlice(convert.Slice(scratch, values, e.sourceUnit, e.header.Unit))

	return nil
}

// Len returns the number of values added so far.
func (e *Encoder) Len() int {
	return int(e.count) //nolint:gosec // bounded by MaxValueCount
}

// Finish encodes the record and returns its bytes. The encoder cannot be
// used afterwards.
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: ErrEncoderFinished, ErrNoValuesAdded, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	if e.count == 0 {
		return nil, errs.ErrNoValuesAdded
	}

	e.finished = true
	defer e.valEncoder.Finish()

	payload, err := e.codec.Compress(e.valEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress values: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManyValues, len(payload))
	}

	e.header.Count = uint32(e.count)              //nolint:gosec // bounded by MaxValueCount
	e.header.PayloadLength = uint32(len(payload)) //nolint:gosec // checked above
	e.header.Checksum = hash.Checksum(payload)

	data := make([]byte, 0, HeaderSize+len(payload))
	data = append(data, e.header.Bytes()...)
	data = append(data, payload...)

	return data, nil
}

// reserve checks that n more values fit into the record and counts them.
func (e *Encoder) reserve(n int) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.count+uint64(n) > MaxValueCount {
		return fmt.Errorf("%w: %d values exceed limit %d", errs.ErrTooManyValues, e.count+uint64(n), uint64(MaxValueCount))
	}
	e.count += uint64(n)

	return nil
}
