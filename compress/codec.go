package compress

import (
	"fmt"

	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
)

// Compressor compresses an encoded value payload.
//
// The returned slice is owned by the caller; the input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompress returns an error when data is corrupted or was produced by a
// different algorithm. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes how much a payload shrank.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the encoded payload before compression
	OriginalSize int64

	// CompressedSize is the size of the payload as stored
	CompressedSize int64
}

// CompressionRatio returns compressed size over original size, or 0 when the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for compressionType. target names the
// payload in the error message.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = newBuiltinCodecs()

func newBuiltinCodecs() map[format.CompressionType]Codec {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	codecs := make(map[format.CompressionType]Codec, len(types))
	for _, ct := range types {
		codec, err := CreateCodec(ct, "value")
		if err != nil {
			panic(err)
		}
		codecs[ct] = codec
	}

	return codecs
}

// GetCodec returns the shared built-in Codec for compressionType. The
// built-in codecs hold no state, so encoders and decoders share them.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: value compression %s", errs.ErrInvalidCompression, compressionType)
}
