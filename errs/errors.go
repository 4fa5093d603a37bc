// Package errs defines the sentinel errors returned by unitcode packages.
//
// Callers match them with errors.Is; returned errors may wrap a sentinel with
// additional context.
package errs

import "errors"

// Record header errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidEncoding     = errors.New("invalid encoding type")
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrValueCountMismatch  = errors.New("value count does not match payload")
)

// Record encoder errors.
var (
	ErrEncoderFinished = errors.New("encoder already finished")
	ErrTooManyValues   = errors.New("too many values")
	ErrNoValuesAdded   = errors.New("no values added")
	ErrInvalidUnit     = errors.New("invalid unit code")
)

// Lookup errors.
var (
	ErrUnknownSystem   = errors.New("unknown unit system")
	ErrUnknownQuantity = errors.New("unknown quantity")
	ErrIndexOutOfRange = errors.New("index out of range")
)
