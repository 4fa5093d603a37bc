package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/unitcode/endian"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
)

// ValueEncoder accumulates float64 values into an encoded payload.
type ValueEncoder interface {
	// Write encodes a single value.
	Write(val float64)

	// WriteSlice encodes values in order.
	WriteSlice(values []float64)

	// Bytes returns the encoded payload. The slice references the encoder's
	// pooled buffer and is only valid until Finish; callers that keep it must
	// copy it first.
	Bytes() []byte

	// Len returns the number of values written.
	Len() int

	// Size returns the number of payload bytes produced so far.
	Size() int

	// Finish returns the buffer to the pool. The encoder must not be used
	// afterwards.
	Finish()
}

// ValueDecoder reads values back from a payload produced by the matching
// ValueEncoder.
type ValueDecoder interface {
	// All yields up to count decoded values. It stops early on malformed data.
	All(data []byte, count int) iter.Seq[float64]

	// At returns the value at index, or false when index is outside [0, count)
	// or the payload is too short.
	At(data []byte, index int, count int) (float64, bool)
}

// NewValueEncoder creates an encoder for encodingType. engine is only used by
// the raw encoding.
func NewValueEncoder(encodingType format.EncodingType, engine endian.EndianEngine) (ValueEncoder, error) {
	switch encodingType {
	case format.TypeRaw:
		return NewNumericRawEncoder(engine), nil
	case format.TypeGorilla:
		return NewNumericGorillaEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncoding, encodingType)
	}
}

// NewValueDecoder creates a decoder for encodingType.
func NewValueDecoder(encodingType format.EncodingType, engine endian.EndianEngine) (ValueDecoder, error) {
	switch encodingType {
	case format.TypeRaw:
		return NewNumericRawDecoder(engine), nil
	case format.TypeGorilla:
		return NewNumericGorillaDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncoding, encodingType)
	}
}
