// Package lcd drives HD44780 compatible character displays over a 4 or 8 bit
// parallel bus by toggling GPIO pins.
//
// A Driver is not safe for concurrent use. The pin sequence of a single
// transfer is not atomic, so two goroutines writing at the same time corrupt
// each other. Keep the driver in one goroutine, or wrap it in a Shared.
//
// The HD44780 offers no acknowledgement on the write path, so failed pin
// writes and missing displays are not reported to the caller. They are only
// logged.
package lcd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// ErrConfig is returned by New when the configuration or the pin assignment
// cannot describe a display.
var ErrConfig = errors.New("invalid lcd configuration")

const (
	command   = gpio.Low
	character = gpio.High
	write     = gpio.Low
)

// Pins holds the GPIO lines connected to the display. Data[i] is wired to
// data bit i of the transfer, so in 4-bit mode Data holds the lines going to
// D4-D7 and in 8-bit mode those going to D0-D7.
type Pins struct {
	RS     gpio.PinOut
	RW     gpio.PinOut // nil when R/W is tied to ground
	Enable gpio.PinOut
	Data   []gpio.PinOut
}

func (p Pins) validate(bus BusWidth) error {
	if p.RS == nil {
		return errors.Wrap(ErrConfig, "missing RS pin")
	}
	if p.Enable == nil {
		return errors.Wrap(ErrConfig, "missing enable pin")
	}
	if len(p.Data) != int(bus) {
		return errors.Wrapf(ErrConfig, "%d data pins for a %v bus", len(p.Data), bus)
	}
	for i, d := range p.Data {
		if d == nil {
			return errors.Wrapf(ErrConfig, "missing data pin %d", i)
		}
	}
	return nil
}

// Sleeper blocks the caller for at least the given duration.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a function to the Sleeper interface.
type SleepFunc func(d time.Duration)

func (f SleepFunc) Sleep(d time.Duration) {
	f(d)
}

// Option modifies how a Driver talks to the platform.
type Option func(d *Driver)

// WithSleeper replaces time.Sleep as the delay primitive.
func WithSleeper(s Sleeper) Option {
	return func(d *Driver) {
		d.sleeper = s
	}
}

// Driver sends commands and characters to an HD44780 display.
type Driver struct {
	pins    Pins
	config  Config
	sleeper Sleeper
}

// New validates the pin assignment against the configuration and initializes
// the display. The driver keeps its own copy of both.
func New(pins Pins, config Config, opts ...Option) (*Driver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := pins.validate(config.Bus); err != nil {
		return nil, err
	}

	pins.Data = append([]gpio.PinOut(nil), pins.Data...)
	d := &Driver{
		pins:    pins,
		config:  config,
		sleeper: SleepFunc(time.Sleep),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.init()
	return d, nil
}

func (d *Driver) init() {
	log.Infof("Initializing LCD (%v)", d.config)
	d.sleeper.Sleep(PowerOnDelay)

	if d.config.Bus == Bus4Bit {
		d.sendCommand(force4BitFirst)
		d.sendCommand(force4BitSecond)
	}
	d.sendCommand(d.config.FunctionSet())

	d.Clear()
	d.TurnOn(CursorOff)
	d.sendCommand(EntryModeRight)
}

// Config returns the display configuration chosen at construction.
func (d *Driver) Config() Config {
	return d.config
}

func (d *Driver) String() string {
	names := make([]string, len(d.pins.Data))
	for i, p := range d.pins.Data {
		names[i] = p.String()
	}
	return fmt.Sprintf("HD44780{%v, RS: %v, E: %v, Data: [%s]}", d.config, d.pins.RS, d.pins.Enable, strings.Join(names, " "))
}

// Halt does nothing. The driver does not own the pins it was given.
func (d *Driver) Halt() error {
	return nil
}

// TurnOn switches the display on with the given cursor.
func (d *Driver) TurnOn(c CursorState) {
	switch c {
	case CursorOff:
		d.sendCommand(DisplayOnCursorOff)
	case CursorBlink:
		d.sendCommand(DisplayOnCursorBlink)
	case CursorSteady:
		d.sendCommand(DisplayOnCursorLine)
	default:
		log.Warnf("lcd: ignoring unknown cursor state %d", int(c))
	}
}

// TurnOff blanks the display. The content is kept and shown again by TurnOn.
func (d *Driver) TurnOff() {
	d.sendCommand(DisplayOff)
}

// Clear empties the display and moves the cursor to the first position.
func (d *Driver) Clear() {
	d.sendCommand(ClearDisplay)
	d.sendCommand(ReturnHome)
}

// PutCharacter writes one character code at the cursor.
func (d *Driver) PutCharacter(c byte) {
	d.sendData(c)
}

// PutString writes s up to, but not including, the first zero byte.
func (d *Driver) PutString(s []byte) {
	for _, c := range s {
		if c == 0 {
			return
		}
		d.PutCharacter(c)
	}
}

// PutText writes the bytes of s.
func (d *Driver) PutText(s string) {
	d.PutString([]byte(s))
}

// Write sends every byte of p as character data, zero bytes included.
func (d *Driver) Write(p []byte) (int, error) {
	for _, c := range p {
		d.PutCharacter(c)
	}
	return len(p), nil
}

func (d *Driver) sendCommand(c byte) {
	log.Debugf("lcd: command 0x%02x", c)
	d.send(c, command)
}

func (d *Driver) sendData(c byte) {
	log.Tracef("lcd: data 0x%02x", c)
	d.send(c, character)
}

func (d *Driver) send(bits byte, mode gpio.Level) {
	d.sleeper.Sleep(SettleDelay)

	if d.pins.RW != nil {
		d.out(d.pins.RW, write)
	}
	d.out(d.pins.RS, mode)

	if d.config.Bus == Bus4Bit {
		d.pulse(bits >> 4)
		d.pulse(bits & 0x0f)
		return
	}
	d.pulse(bits)
}

// pulse puts the low len(Data) bits of bits on the data lines and strobes
// enable.
func (d *Driver) pulse(bits byte) {
	for i, pin := range d.pins.Data {
		d.out(pin, gpio.Level((bits>>uint(i))&1 == 1))
	}
	d.out(d.pins.Enable, gpio.High)
	d.sleeper.Sleep(PulseDelay)
	d.out(d.pins.Enable, gpio.Low)
}

func (d *Driver) out(pin gpio.PinOut, l gpio.Level) {
	if err := pin.Out(l); err != nil {
		log.WithField("pin", pin.String()).Warnf("lcd: unable to drive pin %v: %v", l, err)
	}
}

var _ conn.Resource = &Driver{}
