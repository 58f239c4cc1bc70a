// Copyright 2025 Certen Protocol
//
// Inclusion package errors.

package inclusion

import "errors"

// ErrFieldIndexOutOfRange is returned by Generate when asked to prove a
// field index outside the outer tree's three defined leaves.
var ErrFieldIndexOutOfRange = errors.New("inclusion: field index out of range")
