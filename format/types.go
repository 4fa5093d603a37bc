// Package format enumerates the payload encodings and compressions a
// measurement record can carry.
package format

import (
	"fmt"
	"strings"
)

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores each value as 8 IEEE 754 bytes.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores values XOR-compressed against their predecessor.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known encoding.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseEncoding parses an encoding name such as "raw" or "gorilla".
func ParseEncoding(name string) (EncodingType, error) {
	switch strings.ToLower(name) {
	case "raw":
		return TypeRaw, nil
	case "gorilla":
		return TypeGorilla, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}

// ParseCompression parses a compression name such as "zstd" or "none".
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
