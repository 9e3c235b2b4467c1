// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9539

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// PinIO extends gpio.PinIO with the polarity inversion of the chip.
type PinIO interface {
	gpio.PinIO
	// SetPolarityInverted sets whether Read returns the inverse of the level
	// at the pin.
	SetPolarityInverted(inverted bool) error
	// IsPolarityInverted returns true if Read returns the inverse of the level
	// at the pin.
	IsPolarityInverted() (bool, error)
}

// PinIO returns a gpio.PinIO for p. It panics if p is not a valid Pin.
func (d *Dev) PinIO(p Pin) PinIO {
	if !p.valid() {
		panic(ErrInvalidPin)
	}
	return &expanderPin{dev: d, pin: p}
}

// Register registers the 16 pins of the device in gpioreg, named after the
// device, for example "PCA9539_74_P03".
func (d *Dev) Register() error {
	if d.registered {
		return nil
	}
	for p := Pin(0); p < NumPins; p++ {
		if err := gpioreg.Register(d.PinIO(p)); err != nil {
			for q := Pin(0); q < p; q++ {
				_ = gpioreg.Unregister(d.pinName(q))
			}
			return err
		}
	}
	d.registered = true
	return nil
}

// Close removes the pins added by Register from gpioreg.
//
// All the pins are unregistered even if one fails; the first error is
// returned.
func (d *Dev) Close() error {
	if !d.registered {
		return nil
	}
	var first error
	for p := Pin(0); p < NumPins; p++ {
		if err := gpioreg.Unregister(d.pinName(p)); err != nil && first == nil {
			first = err
		}
	}
	d.registered = false
	return first
}

func (d *Dev) pinName(p Pin) string {
	return d.String() + "_" + p.String()
}

type expanderPin struct {
	dev *Dev
	pin Pin
}

func (p *expanderPin) String() string {
	return p.Name()
}

// Halt makes the pin a high impedance input.
func (p *expanderPin) Halt() error {
	return p.In(gpio.Float, gpio.NoEdge)
}

func (p *expanderPin) Name() string {
	return p.dev.pinName(p.pin)
}

func (p *expanderPin) Number() int {
	return int(p.pin)
}

func (p *expanderPin) Function() string {
	return string(p.Func())
}

func (p *expanderPin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return errors.New("pca9539: PullDown is not supported")
	case gpio.PullUp:
		return errors.New("pca9539: PullUp is not supported")
	case gpio.Float, gpio.PullNoChange:
	}
	// The INT line is not on the bus.
	if edge != gpio.NoEdge {
		return errors.New("pca9539: edge detection not supported")
	}
	return p.dev.SetDirection(p.pin, Input)
}

func (p *expanderPin) Read() gpio.Level {
	l, _ := p.dev.Level(p.pin)
	return l
}

func (p *expanderPin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *expanderPin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *expanderPin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out sets the output level before switching the pin to output, so the pin
// never drives the previous level.
func (p *expanderPin) Out(l gpio.Level) error {
	if err := p.dev.SetLevel(p.pin, l); err != nil {
		return err
	}
	return p.dev.SetDirection(p.pin, Output)
}

func (p *expanderPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNotImplemented
}

func (p *expanderPin) Func() pin.Func {
	dir, err := p.dev.Direction(p.pin)
	if err != nil {
		return pin.FuncNone
	}
	if dir == Input {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *expanderPin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *expanderPin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.dev.SetDirection(p.pin, Input)
	case gpio.OUT:
		return p.dev.SetDirection(p.pin, Output)
	default:
		return errors.New("pca9539: function not supported: " + string(f))
	}
}

func (p *expanderPin) SetPolarityInverted(inverted bool) error {
	return p.dev.SetPolarityInverted(p.pin, inverted)
}

func (p *expanderPin) IsPolarityInverted() (bool, error) {
	return p.dev.PolarityInverted(p.pin)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ PinIO = &expanderPin{}
var _ pin.PinFunc = &expanderPin{}
