// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9539

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the address of the device with A0 and A1 tied low.
const DefaultAddress uint16 = 0x74

// Dev is a handle to a PCA9539 on an I²C bus.
type Dev struct {
	d i2c.Dev

	registered bool
}

// NewDefault returns a Dev that communicates with the expander at
// DefaultAddress.
func NewDefault(bus i2c.Bus) (*Dev, error) {
	return New(bus, DefaultAddress)
}

// New returns a Dev that communicates with the expander at addr.
//
// No bus transaction is done.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	return &Dev{d: i2c.Dev{Bus: bus, Addr: addr}}, nil
}

// Address returns the I²C address of the device.
func (d *Dev) Address() uint16 {
	return d.d.Addr
}

func (d *Dev) String() string {
	return fmt.Sprintf("PCA9539_%x", d.d.Addr)
}

// Read returns the value of the register at reg.
//
// The register pointer is written and one byte is read back in a single
// combined transaction.
func (d *Dev) Read(reg uint8) (uint8, error) {
	var r [1]byte
	if err := d.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, &BusError{Op: "read", Addr: d.d.Addr, Reg: reg, Err: err}
	}
	return r[0], nil
}

// Write sets the register at reg to v.
func (d *Dev) Write(reg, v uint8) error {
	if err := d.d.Tx([]byte{reg, v}, nil); err != nil {
		return &BusError{Op: "write", Addr: d.d.Addr, Reg: reg, Err: err}
	}
	return nil
}

// Bit reads the register at reg and reports whether bit is set.
func (d *Dev) Bit(reg uint8, bit uint8) (bool, error) {
	if bit > 7 {
		return false, ErrInvalidBit
	}
	v, err := d.Read(reg)
	if err != nil {
		return false, err
	}
	return getBit(v, bit), nil
}

// SetBit reads the register at reg, sets or clears bit and writes the
// register back. The other bits are written back with the value read.
//
// The write is not done if the read fails. The sequence is not atomic: a
// change to the register by another bus master between the read and the write
// is lost.
func (d *Dev) SetBit(reg uint8, bit uint8, value bool) error {
	if bit > 7 {
		return ErrInvalidBit
	}
	v, err := d.Read(reg)
	if err != nil {
		return err
	}
	return d.Write(reg, setBit(v, bit, value))
}

// SetLevel sets the output register bit of p. It is the level driven on the
// pin once it is configured as an output.
func (d *Dev) SetLevel(p Pin, l gpio.Level) error {
	return d.setPin(OutputPort, p, l == gpio.High)
}

// SetDirection configures p as an input or an output.
func (d *Dev) SetDirection(p Pin, dir Direction) error {
	return d.setPin(Configuration, p, dir == Input)
}

// SetPolarityInverted sets whether the input register reports the inverse of
// the level at p.
func (d *Dev) SetPolarityInverted(p Pin, inverted bool) error {
	return d.setPin(PolarityInversion, p, inverted)
}

// Level returns the level present at p, as reported by the input register.
func (d *Dev) Level(p Pin) (gpio.Level, error) {
	v, err := d.pin(InputPort, p)
	return gpio.Level(v), err
}

// OutputLevel returns the output register bit of p.
func (d *Dev) OutputLevel(p Pin) (gpio.Level, error) {
	v, err := d.pin(OutputPort, p)
	return gpio.Level(v), err
}

// Direction returns the configured direction of p.
func (d *Dev) Direction(p Pin) (Direction, error) {
	v, err := d.pin(Configuration, p)
	if err != nil || !v {
		return Output, err
	}
	return Input, nil
}

// PolarityInverted reports whether the input of p is inverted.
func (d *Dev) PolarityInverted(p Pin) (bool, error) {
	return d.pin(PolarityInversion, p)
}

// State is a copy of the eight registers of the device. Port 0 is the low
// byte and port 1 the high byte of each field.
type State struct {
	Input    uint16
	Output   uint16
	Polarity uint16
	Config   uint16
}

// Dump reads all the registers of the device, in address order.
func (d *Dev) Dump() (State, error) {
	var regs [8]uint8
	for i := range regs {
		v, err := d.Read(uint8(i))
		if err != nil {
			return State{}, err
		}
		regs[i] = v
	}
	return State{
		Input:    uint16(regs[InputPort]) | uint16(regs[InputPort|1])<<8,
		Output:   uint16(regs[OutputPort]) | uint16(regs[OutputPort|1])<<8,
		Polarity: uint16(regs[PolarityInversion]) | uint16(regs[PolarityInversion|1])<<8,
		Config:   uint16(regs[Configuration]) | uint16(regs[Configuration|1])<<8,
	}, nil
}

// Halt configures all the pins as inputs, the power-on state of the chip.
func (d *Dev) Halt() error {
	if err := d.Write(Configuration, 0xFF); err != nil {
		return err
	}
	return d.Write(Configuration|1, 0xFF)
}

func (d *Dev) setPin(base uint8, p Pin, value bool) error {
	if !p.valid() {
		return ErrInvalidPin
	}
	return d.SetBit(p.Register(base), p.Bit(), value)
}

func (d *Dev) pin(base uint8, p Pin) (bool, error) {
	if !p.valid() {
		return false, ErrInvalidPin
	}
	return d.Bit(p.Register(base), p.Bit())
}
