package record

import (
	"fmt"

	"github.com/arloliu/unitcode/endian"
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/internal/options"
	"github.com/arloliu/unitcode/unit"
)

// encoderConfig holds the header under construction and the settings that
// decide how values are written.
type encoderConfig struct {
	header     *Header
	engine     endian.EndianEngine
	sourceUnit unit.Code
}

func newEncoderConfig(u unit.Code) *encoderConfig {
	header := NewHeader(u)

	return &encoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}
}

func (c *encoderConfig) setValueEncoding(enc format.EncodingType) error {
	if !enc.Valid() {
		return fmt.Errorf("%w: invalid value encoding: %v", errs.ErrInvalidEncoding, enc)
	}
	c.header.Flag.SetValueEncoding(enc)

	return nil
}

func (c *encoderConfig) setValueCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: invalid value compression: %v", errs.ErrInvalidCompression, comp)
	}
	c.header.Flag.SetValueCompression(comp)

	return nil
}

// setEndianess sets the endianness option.
func (c *encoderConfig) setEndianess(endiness endianness) {
	switch endiness {
	case littleEndianOpt:
		c.header.Flag.WithLittleEndian()
	case bigEndianOpt:
		c.header.Flag.WithBigEndian()
	default:
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.Flag.GetEndianEngine()
}

func (c *encoderConfig) setQuantity(name string) {
	if name == "" {
		c.header.QuantityID = 0
		return
	}
	c.header.QuantityID = hash.ID(name)
}

func (c *encoderConfig) setSourceUnit(from unit.Code) error {
	if !from.Valid() {
		return fmt.Errorf("%w: source unit %s", errs.ErrInvalidUnit, from)
	}
	c.sourceUnit = from

	return nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithLittleEndian writes the header and payload little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian writes the header and payload big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithCompression sets the payload compression, format.CompressionZstd by default.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		return c.setValueCompression(comp)
	})
}

// WithEncoding sets the value encoding, format.TypeRaw by default.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		return c.setValueEncoding(enc)
	})
}

// WithQuantity tags the record with the hash of a quantity name such as
// "engine.coolant". An empty name leaves the record unnamed.
func WithQuantity(name string) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.setQuantity(name)
	})
}

// WithSourceUnit declares that values passed to Add and AddSlice are expressed
// in from; they are converted into the record unit before encoding.
func WithSourceUnit(from unit.Code) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		return c.setSourceUnit(from)
	})
}
