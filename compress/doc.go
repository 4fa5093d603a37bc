// Package compress provides the payload codecs of a measurement record.
//
// A record payload is first encoded (raw IEEE 754 or Gorilla XOR, see package
// encoding) and then compressed with one of the codecs below. The codec is
// named by format.CompressionType in the record header:
//
//   - None: payload stored as encoded
//   - Zstd: best ratio, slowest
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//
// GetCodec returns shared, stateless codecs; CreateCodec returns a fresh one.
// All codecs are safe for concurrent use. Zstd and LZ4 keep their heavy
// encoder and decoder state in sync.Pool.
//
// # Choosing a codec
//
// Raw float64 payloads of smoothly varying measurements compress well with
// Zstd (typically 2-4x). Gorilla payloads are already dense and gain little
// from any codec; pair them with None or LZ4. Constant series compress to a
// few bytes with every codec.
//
// # Build tags
//
// Zstd is served by github.com/klauspost/compress/zstd unless the module is
// built with -tags gozstd and cgo is enabled, in which case
// github.com/valyala/gozstd is linked instead.
package compress
