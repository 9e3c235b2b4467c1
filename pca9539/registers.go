// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9539

import (
	"fmt"
	"strconv"
	"strings"
)

// Register families. Each family is a pair of registers, the low one for port
// 0 and the high one for port 1.
const (
	InputPort         uint8 = 0x00 // Current logic level of the pins; read only.
	OutputPort        uint8 = 0x02 // Level driven on pins configured as outputs.
	PolarityInversion uint8 = 0x04 // Inverts the value read from InputPort.
	Configuration     uint8 = 0x06 // Pin direction; 1 is input, 0 is output.
)

// Pin identifies one of the 16 pins of the expander.
//
// The low 3 bits are the bit position within a register, the 4th bit selects
// the port.
type Pin uint8

const (
	P00 Pin = 0
	P01 Pin = 1
	P02 Pin = 2
	P03 Pin = 3
	P04 Pin = 4
	P05 Pin = 5
	P06 Pin = 6
	P07 Pin = 7
	P10 Pin = 8
	P11 Pin = 9
	P12 Pin = 10
	P13 Pin = 11
	P14 Pin = 12
	P15 Pin = 13
	P16 Pin = 14
	P17 Pin = 15

	// NumPins is the number of pins on the device.
	NumPins = 16
)

// Port returns the port the pin belongs to, 0 or 1.
func (p Pin) Port() uint8 {
	return uint8(p) >> 3
}

// Bit returns the bit position of the pin within its port registers.
func (p Pin) Bit() uint8 {
	return uint8(p) & 7
}

// Register returns the address of the register of the family base that
// controls this pin.
func (p Pin) Register(base uint8) uint8 {
	return base | p.Port()
}

func (p Pin) valid() bool {
	return p < NumPins
}

func (p Pin) String() string {
	if !p.valid() {
		return "Pin(" + strconv.Itoa(int(p)) + ")"
	}
	return fmt.Sprintf("P%d%d", p.Port(), p.Bit())
}

// ParsePin returns the Pin named s, as returned by Pin.String. The "P" prefix
// is optional and case is ignored, so "P13", "p13" and "13" are the same pin.
func ParsePin(s string) (Pin, error) {
	n := strings.TrimPrefix(strings.ToUpper(s), "P")
	if len(n) != 2 || (n[0] != '0' && n[0] != '1') || n[1] < '0' || n[1] > '7' {
		return 0, fmt.Errorf("pca9539: invalid pin name %q", s)
	}
	return Pin((n[0]-'0')<<3 | (n[1] - '0')), nil
}

// Direction is the configuration of a pin.
//
// The values match the configuration register: a set bit is an input.
type Direction uint8

const (
	Output Direction = 0
	Input  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Output:
		return "Out"
	case Input:
		return "In"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// setBit returns v with bit set to value. All other bits are unchanged.
func setBit(v uint8, bit uint8, value bool) uint8 {
	if value {
		return v | 1<<bit
	}
	return v &^ (1 << bit)
}

func getBit(v uint8, bit uint8) bool {
	return v&(1<<bit) != 0
}
