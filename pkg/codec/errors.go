// Copyright 2025 Certen Protocol
//
// Codec package errors.

package codec

import "errors"

// ErrUnexpectedEOF is returned when a Decode call runs out of bytes before
// it has consumed a complete value.
var ErrUnexpectedEOF = errors.New("codec: unexpected end of input")

// ErrConditionTooLong is returned when decoding a PredKey whose encoded
// condition exceeds outerstate.MaxConditionLen - the canonical bound is
// enforced on decode, not only on construction.
var ErrConditionTooLong = errors.New("codec: decoded predicate condition exceeds maximum length")

// ErrInvalidOptionTag is returned when a decoded Option tag byte is neither
// 0 (absent) nor 1 (present).
var ErrInvalidOptionTag = errors.New("codec: invalid option tag")

// ErrTrailingBytes is returned by Decode functions that require the input
// to be fully consumed when trailing bytes remain.
var ErrTrailingBytes = errors.New("codec: trailing bytes after decoded value")
