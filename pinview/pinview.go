// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pinview renders the pins of a PCA9539 on a terminal using ANSI color
// codes, one line per refresh.
//
// Inputs are drawn green and outputs red, bright when the level is high.
package pinview

import (
	"bytes"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/expander/pca9539"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the view.
type Opts struct {
	Palette *ansi256.Palette
	// Plain disables colors. Each pin is then a character: H or L for an
	// input, 1 or 0 for an output.
	Plain bool

	_ struct{}
}

// DefaultOpts draws with the default palette.
var DefaultOpts = Opts{}

// Colors of the pins, by direction then level.
var (
	InputHigh  = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
	InputLow   = color.NRGBA{0x00, 0x40, 0x00, 0xFF}
	OutputHigh = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	OutputLow  = color.NRGBA{0x40, 0x00, 0x00, 0xFF}
)

// View writes pin states to a terminal.
type View struct {
	w       io.Writer
	palette *ansi256.Palette
	plain   bool

	buf bytes.Buffer
}

// New returns a View that writes to w. A nil w writes to stdout, with ANSI
// escape sequences translated on Windows.
func New(w io.Writer, opts *Opts) *View {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &View{w: w, palette: p, plain: opts.Plain}
}

func (v *View) String() string {
	return "PinView"
}

// Render redraws the line with the state s. P00 is drawn first.
//
// The levels shown are the ones of the input register, so an output reads
// back the level actually present on the pin.
func (v *View) Render(s pca9539.State) error {
	v.buf.Reset()
	if v.plain {
		_ = v.buf.WriteByte('\r')
	} else {
		_, _ = v.buf.WriteString("\r\033[0m")
	}
	for p := pca9539.Pin(0); p < pca9539.NumPins; p++ {
		if p == pca9539.P10 {
			_ = v.buf.WriteByte(' ')
		}
		mask := uint16(1) << p
		input := s.Config&mask != 0
		high := s.Input&mask != 0
		if v.plain {
			_ = v.buf.WriteByte(glyph(input, high))
		} else {
			_, _ = io.WriteString(&v.buf, v.palette.Block(pinColor(input, high)))
		}
	}
	if !v.plain {
		_, _ = v.buf.WriteString("\033[0m ")
	}
	_, err := v.buf.WriteTo(v.w)
	return err
}

// Halt terminates the line and resets the terminal attributes.
func (v *View) Halt() error {
	s := "\n"
	if !v.plain {
		s = "\n\033[0m"
	}
	_, err := io.WriteString(v.w, s)
	return err
}

func glyph(input, high bool) byte {
	switch {
	case input && high:
		return 'H'
	case input:
		return 'L'
	case high:
		return '1'
	default:
		return '0'
	}
}

func pinColor(input, high bool) color.NRGBA {
	switch {
	case input && high:
		return InputHigh
	case input:
		return InputLow
	case high:
		return OutputHigh
	default:
		return OutputLow
	}
}
