package record

import (
	"fmt"

	"github.com/arloliu/unitcode/endian"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
)

// Flag represents the packed flag bytes at the start of the record header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 0, 2 and 3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the record format:
	//   - 0xEC10 (0b1110_1100_0001_0000): measurement record format v1
	Options uint16

	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
	// EncodingType is the format.EncodingType of the values.
	EncodingType uint8
}

// NewFlag creates a little-endian flag with raw encoding and Zstd compression.
func NewFlag() Flag {
	return Flag{
		Options:         MagicRecordV1Opt,
		CompressionType: uint8(format.CompressionZstd),
		EncodingType:    uint8(format.TypeRaw),
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

func (f Flag) ValueCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

func (f *Flag) SetValueCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

func (f Flag) ValueEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

func (f *Flag) SetValueEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Validate checks if the flag contains valid values.
//
// Returns:
//   - error: ErrInvalidMagicNumber, ErrInvalidHeaderFlags, ErrInvalidCompression
//     or ErrInvalidEncoding wrapped with the offending value
func (f Flag) Validate() error {
	if magic := f.GetMagicNumber(); magic != MagicRecordV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04x", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.ValueCompression().Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, f.CompressionType)
	}

	if !f.ValueEncoding().Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, f.EncodingType)
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
