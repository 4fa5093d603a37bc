package record

import (
	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/unit"
)

// Header represents the fixed-size header at the start of a record.
type Header struct {
	// Flag is a packed field for byte order, magic number, compression and encoding.
	Flag Flag // byte offset 0-3
	// Count is the number of values in the payload.
	Count uint32 // byte offset 4-7
	// Unit is the unit code every value is expressed in.
	Unit unit.Code // byte offset 8-15
	// QuantityID is hash.ID of the quantity name, 0 when the record is unnamed.
	QuantityID uint64 // byte offset 16-23
	// PayloadLength is the size of the stored payload after compression.
	PayloadLength uint32 // byte offset 24-27
	// Checksum is the low 32 bits of the xxHash64 of the stored payload.
	Checksum uint32 // byte offset 28-31
}

// NewHeader creates a header for values in unit u.
// Count, payload length and checksum are set when the encoder finishes.
func NewHeader(u unit.Code) *Header {
	return &Header{
		Flag: NewFlag(),
		Unit: u,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options field is always little-endian, it carries the endianness bit itself
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.EncodingType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.Count = engine.Uint32(data[4:8])
	h.Unit = unit.Code(engine.Uint64(data[8:16]))
	h.QuantityID = engine.Uint64(data[16:24])
	h.PayloadLength = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	return h.Flag.Validate()
}

// Bytes serializes the header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.EncodingType
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint64(b[8:16], uint64(h.Unit))
	engine.PutUint64(b[16:24], h.QuantityID)
	engine.PutUint32(b[24:28], h.PayloadLength)
	engine.PutUint32(b[28:32], h.Checksum)

	return b
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
