package nbt

import "errors"

// Sentinel errors returned by the decoder. Call sites wrap them with
// fmt.Errorf and %w so errors.Is keeps matching after context is added.
var (
	ErrTruncated       = errors.New("nbt: truncated input")
	ErrInvalidEncoding = errors.New("nbt: string is not valid utf-8")
	ErrInvalidLength   = errors.New("nbt: invalid length")
	ErrUnknownType     = errors.New("nbt: unknown tag type")
	ErrNestingTooDeep  = errors.New("nbt: nesting too deep")
	ErrDecompression   = errors.New("nbt: gzip decompression failed")
)
