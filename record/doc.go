// Package record stores a series of measurements together with the unit code
// they are expressed in.
//
// A record is a fixed 32-byte header followed by one payload. The header
// carries the unit code, an optional quantity identifier and the payload's
// encoding, compression, byte order, length and checksum. The payload holds
// the values, either as raw IEEE 754 words or Gorilla XOR-compressed, and is
// then compressed with Zstd, S2 or LZ4.
//
// Encoding:
//
//	enc, err := record.NewEncoder(unit.Celsius,
//		record.WithQuantity("engine.coolant"),
//		record.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//		return err
//	}
//	enc.AddSlice(readings)
//	data, err := enc.Finish()
//
// Decoding, reading the values back in another unit:
//
//	dec, err := record.NewDecoder(data)
//	if err != nil {
//		return err
//	}
//	fahrenheit := dec.ValuesIn(unit.Fahrenheit)
package record
