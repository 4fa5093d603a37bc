// Package encoding turns a series of float64 measurement values into a
// record payload and back.
//
// Two encodings are provided, selected by format.EncodingType:
//
//   - Raw (NumericRawEncoder): 8 bytes per value in the record's byte order.
//     Random access is O(1) and the decoder maps the payload in place when the
//     byte order matches the host.
//   - Gorilla (NumericGorillaEncoder): each value is XORed with its
//     predecessor and only the meaningful bits are kept. An unchanged value
//     costs one bit, so sensor series that hold steady shrink dramatically.
//     Random access decodes sequentially up to the requested index.
//
// Encoders draw their buffers from internal/pool and must be released with
// Finish once the payload has been copied out:
//
//	enc, err := encoding.NewValueEncoder(format.TypeGorilla, engine)
//	if err != nil {
//		return err
//	}
//	defer enc.Finish()
//
//	enc.WriteSlice(values)
//	payload := append([]byte(nil), enc.Bytes()...)
//
// Decoders are stateless values and safe for concurrent use:
//
//	dec, _ := encoding.NewValueDecoder(format.TypeGorilla, engine)
//	for v := range dec.All(payload, count) {
//		...
//	}
//
// Decoders never fail loudly on malformed input. They yield fewer than count
// values and callers compare the number received with the count they expect.
//
// # Gorilla bit layout
//
// The first value is stored as 64 raw bits. Every following value starts
// with a control bit:
//
//	0                      value unchanged
//	1 0 <bits>             XOR fits the previous leading/trailing window
//	1 1 <5:lead> <6:len-1> <bits>
//	                       new window; lead is clamped to 31
//
// Bits are packed most significant first and the stream is zero-padded to a
// whole byte. The layout does not depend on the record byte order.
package encoding
