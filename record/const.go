package record

const (
	// Bit masks of the Options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicRecordV1Opt is the version 1 magic number for measurement records.
	MagicRecordV1Opt = 0xEC10
)

const (
	HeaderSize = 32 // fixed header size in bytes

	// DefaultCacheSize is the number of converted views a Decoder keeps.
	DefaultCacheSize = 8
)
