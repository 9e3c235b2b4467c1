// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pca9539

import (
	"errors"
	"strconv"

	"periph.io/x/conn/v3"
)

// Port returns a conn.Conn for the 8 pins of port n, 0 or 1.
//
// Bytes written to it are written to the output register of the port, bytes
// read come from the input register. The pin directions are left as they are.
func (d *Dev) Port(n int) conn.Conn {
	if n != 0 && n != 1 {
		panic("pca9539: invalid port " + strconv.Itoa(n))
	}
	return &port{dev: d, n: uint8(n)}
}

type port struct {
	dev *Dev
	n   uint8
}

// Tx writes w or reads r, one register access per byte. Only half duplex is
// supported so it is an error to pass both buffers.
func (p *port) Tx(w, r []byte) error {
	if len(w) > 0 && len(r) > 0 {
		return errors.New("pca9539: only conn.Half duplex is supported")
	}
	for _, b := range w {
		if err := p.dev.Write(OutputPort|p.n, b); err != nil {
			return err
		}
	}
	for i := range r {
		v, err := p.dev.Read(InputPort | p.n)
		if err != nil {
			return err
		}
		r[i] = v
	}
	return nil
}

func (p *port) Duplex() conn.Duplex {
	return conn.Half
}

func (p *port) String() string {
	return p.dev.String() + "_P" + strconv.Itoa(int(p.n))
}
