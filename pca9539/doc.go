// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pca9539 provides a driver for the NXP PCA9539 and TI TCA9539 16-bit
// I²C I/O expanders.
//
// The chip has two 8-bit ports, P0 and P1. Each port is controlled by a pair
// of registers per function: input, output, polarity inversion and
// configuration (direction). Pin operations are performed as a read of the
// full register, a change of a single bit, and a write of the full register
// back, so sibling pins are never disturbed.
//
// The device answers on 0x74 by default. The A0 and A1 straps select an
// address in the range 0x74 to 0x77.
//
// # Concurrency
//
// A Dev is not safe for concurrent use. The read-modify-write of a register is
// two separate bus transactions: a change made by another bus master between
// them is overwritten. Callers sharing a device must serialize all accesses to
// it.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/PCA9539_PCA9539R.pdf
//
// https://www.ti.com/lit/gpn/tca9539
package pca9539
