// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9539

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPin is returned for a Pin value outside P00 to P17.
	ErrInvalidPin = errors.New("pca9539: invalid pin")
	// ErrInvalidBit is returned for a bit index greater than 7.
	ErrInvalidBit = errors.New("pca9539: bit index out of range")
	// ErrNotImplemented is returned by gpio features the chip lacks.
	ErrNotImplemented = errors.New("pca9539: not implemented")
)

// BusError is returned when the I²C bus fails a transaction.
//
// Err is the error reported by the bus, unmodified. Compare with errors.Is or
// errors.As, since the error returned by the driver is the *BusError itself.
type BusError struct {
	Op   string // "read" or "write"
	Addr uint16
	Reg  uint8
	Err  error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("pca9539: %s of register 0x%02x at address 0x%02x: %v", e.Op, e.Reg, e.Addr, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
