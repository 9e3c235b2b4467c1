// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// pca9539 reads and changes the pins of a PCA9539 I/O expander.
//
// Usage:
//
//	pca9539 [-b bus] [-a addr] [-v] get P03
//	pca9539 set P14 high
//	pca9539 dir P14 out
//	pca9539 dump
//	pca9539 watch -interval 50ms
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/expander/pca9539"
	"github.com/GermanBionicSystems/expander/pinview"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/host/v3"
)

func parseLevel(s string) (gpio.Level, error) {
	switch strings.ToLower(s) {
	case "high", "h", "1":
		return gpio.High, nil
	case "low", "l", "0":
		return gpio.Low, nil
	}
	return gpio.Low, fmt.Errorf("invalid level %q", s)
}

func parseDirection(s string) (pca9539.Direction, error) {
	switch strings.ToLower(s) {
	case "in", "input":
		return pca9539.Input, nil
	case "out", "output":
		return pca9539.Output, nil
	}
	return pca9539.Input, fmt.Errorf("invalid direction %q", s)
}

func dump(w io.Writer, s pca9539.State) {
	fmt.Fprintf(w, "Pin  Dir  Level  Out  Inv\n")
	for p := pca9539.Pin(0); p < pca9539.NumPins; p++ {
		mask := uint16(1) << p
		dir := pca9539.Output
		if s.Config&mask != 0 {
			dir = pca9539.Input
		}
		fmt.Fprintf(w, "%-4s %-4s %-6s %-4s %t\n", p, dir, gpio.Level(s.Input&mask != 0), gpio.Level(s.Output&mask != 0), s.Polarity&mask != 0)
	}
}

// session is a device opened by the tool. With -v the bus is wrapped in a
// recorder and the transactions are logged by flush.
type session struct {
	dev    *pca9539.Dev
	rec    *i2ctest.Record
	logger *log.Logger
}

// parseAddr parses a 7-bit I²C address in decimal, hexadecimal (0x) or octal.
func parseAddr(s string) (uint16, error) {
	a, err := strconv.ParseUint(s, 0, 7)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(a), nil
}

func newSession(b i2c.Bus, addr string, verbose bool, logger *log.Logger) (*session, error) {
	a, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger}
	bus := b
	if verbose {
		s.rec = &i2ctest.Record{Bus: b}
		bus = s.rec
	}
	if s.dev, err = pca9539.New(bus, a); err != nil {
		return nil, err
	}
	return s, nil
}

// flush logs the recorded transactions and forgets them.
func (s *session) flush() {
	if s.rec == nil {
		return
	}
	for _, op := range s.rec.Ops {
		s.logger.Printf("0x%02x W=%#v R=%#v", op.Addr, op.W, op.R)
	}
	s.rec.Ops = s.rec.Ops[:0]
}

// plainOutput returns true when fd is not a terminal, so no escape sequence
// should be written to it.
func plainOutput(fd uintptr) bool {
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// watch renders the pins on v every interval until stop receives a value.
// The recorded transactions are flushed after each refresh.
func watch(s *session, v *pinview.View, interval time.Duration, stop <-chan os.Signal) error {
	defer v.Halt()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		st, err := s.dev.Dump()
		if err != nil {
			return err
		}
		if err := v.Render(st); err != nil {
			return err
		}
		s.flush()
		select {
		case <-stop:
			return nil
		case <-t.C:
		}
	}
}

func run(s *session, args []string) error {
	dev := s.dev
	switch args[0] {
	case "get":
		if len(args) != 2 {
			return errors.New("usage: get PIN")
		}
		p, err := pca9539.ParsePin(args[1])
		if err != nil {
			return err
		}
		l, err := dev.Level(p)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", l)
		return nil
	case "set":
		if len(args) != 3 {
			return errors.New("usage: set PIN high|low")
		}
		p, err := pca9539.ParsePin(args[1])
		if err != nil {
			return err
		}
		l, err := parseLevel(args[2])
		if err != nil {
			return err
		}
		return dev.SetLevel(p, l)
	case "dir":
		if len(args) != 3 {
			return errors.New("usage: dir PIN in|out")
		}
		p, err := pca9539.ParsePin(args[1])
		if err != nil {
			return err
		}
		d, err := parseDirection(args[2])
		if err != nil {
			return err
		}
		return dev.SetDirection(p, d)
	case "dump":
		st, err := dev.Dump()
		if err != nil {
			return err
		}
		dump(os.Stdout, st)
		return nil
	case "watch":
		fs := flag.NewFlagSet("watch", flag.ContinueOnError)
		interval := fs.Duration("interval", 100*time.Millisecond, "refresh interval")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 0 || *interval <= 0 {
			return errors.New("usage: watch [-interval d]")
		}
		v := pinview.New(nil, &pinview.Opts{Plain: plainOutput(os.Stdout.Fd())})
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		defer signal.Stop(stop)
		return watch(s, v, *interval, stop)
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.String("a", "0x74", "I²C address of the device")
	verbose := flag.Bool("v", false, "print the bus transactions")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: pca9539 [flags] get|set|dir|dump|watch [args]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("missing command")
	}
	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	s, err := newSession(b, *addr, *verbose, log.New(os.Stderr, "", log.LstdFlags))
	if err != nil {
		return err
	}
	err = run(s, flag.Args())
	s.flush()
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "pca9539: %s.\n", err)
		os.Exit(1)
	}
}
