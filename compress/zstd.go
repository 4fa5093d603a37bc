package compress

// ZstdCompressor uses Zstandard. It gives the best ratio of the built-in
// codecs and suits records that are archived rather than read hot.
//
// The default build uses the pure Go klauspost/compress implementation. Build
// with the gozstd tag (and cgo) to link the reference C library instead; both
// produce standard frames that either build can read.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
