// Package lcdtest records the pin and delay traffic of an lcd.Driver and
// decodes it back into bus transfers.
package lcdtest

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/callebjorkell/charlcd/lcd"
)

// Event is either a pin level change or a sleep.
type Event struct {
	Pin   string
	Level gpio.Level
	Sleep time.Duration
}

func (e Event) String() string {
	if e.Pin == "" {
		return fmt.Sprintf("sleep %v", e.Sleep)
	}
	return fmt.Sprintf("%s=%v", e.Pin, e.Level)
}

// Recorder keeps an ordered log of everything the driver does to its pins and
// its sleeper. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Sleep records d without blocking.
func (r *Recorder) Sleep(d time.Duration) {
	r.add(Event{Sleep: d})
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the log.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Pin returns an output pin that logs into r.
func (r *Recorder) Pin(name string) *Pin {
	return &Pin{name: name, rec: r}
}

// Pins returns a full pin assignment for the given bus width, named RS, RW,
// E and D0..D7.
func (r *Recorder) Pins(bus lcd.BusWidth) lcd.Pins {
	p := lcd.Pins{
		RS:     r.Pin("RS"),
		RW:     r.Pin("RW"),
		Enable: r.Pin("E"),
	}
	for i := 0; i < int(bus); i++ {
		p.Data = append(p.Data, r.Pin(fmt.Sprintf("D%d", i)))
	}
	return p
}

// Pin is a gpio.PinOut that records its level changes.
type Pin struct {
	name string
	rec  *Recorder
	mu   sync.Mutex
	L    gpio.Level
	// Err is returned by Out after the level has been recorded.
	Err error
}

func (p *Pin) String() string {
	return p.name
}

func (p *Pin) Halt() error {
	return nil
}

func (p *Pin) Name() string {
	return p.name
}

// Number always returns -1, recording pins have no hardware number.
func (p *Pin) Number() int {
	return -1
}

func (p *Pin) Function() string {
	return "Out"
}

func (p *Pin) Out(l gpio.Level) error {
	p.mu.Lock()
	p.L = l
	err := p.Err
	p.mu.Unlock()

	p.rec.add(Event{Pin: p.name, Level: l})
	return err
}

func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("lcdtest: PWM is not supported on %s", p.name)
}

var _ gpio.PinOut = &Pin{}
