package lcdtest

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/callebjorkell/charlcd/lcd"
)

// Strobe is one enable pulse as seen by the display.
type Strobe struct {
	RS gpio.Level
	RW gpio.Level
	// Value holds the data lines at the rising edge of enable, D0 in bit 0.
	Value byte
	// Hold is the time slept while enable was high.
	Hold time.Duration
	// Idle is the time slept between the previous falling edge (or the start
	// of the recording) and this rising edge.
	Idle time.Duration
}

// Strobes replays events and returns every enable pulse. Pins named as by
// Recorder.Pins are expected; every pin starts low.
func Strobes(events []Event) []Strobe {
	levels := map[string]gpio.Level{}
	var (
		strobes []Strobe
		current *Strobe
		idle    time.Duration
	)
	for _, e := range events {
		if e.Pin == "" {
			if current != nil {
				current.Hold += e.Sleep
			} else {
				idle += e.Sleep
			}
			continue
		}

		before := levels[e.Pin]
		levels[e.Pin] = e.Level
		if e.Pin != "E" || before == e.Level {
			continue
		}

		if e.Level == gpio.High {
			s := Strobe{
				RS:   levels["RS"],
				RW:   levels["RW"],
				Idle: idle,
			}
			for i := 0; i < 8; i++ {
				if levels[fmt.Sprintf("D%d", i)] == gpio.High {
					s.Value |= 1 << uint(i)
				}
			}
			current = &s
			continue
		}
		strobes = append(strobes, *current)
		current = nil
		idle = 0
	}
	return strobes
}

// Frame is one command or character byte on the bus.
type Frame struct {
	Command bool
	Value   byte
	// Settle is the time slept before the first strobe of the frame.
	Settle  time.Duration
	Strobes []Strobe
}

func (f Frame) String() string {
	kind := "data"
	if f.Command {
		kind = "command"
	}
	return fmt.Sprintf("%s 0x%02x", kind, f.Value)
}

// Frames groups strobes into bytes: one strobe per byte on an 8-bit bus, a
// high and a low nibble on a 4-bit bus.
func Frames(strobes []Strobe, bus lcd.BusWidth) ([]Frame, error) {
	var frames []Frame
	switch bus {
	case lcd.Bus8Bit:
		for _, s := range strobes {
			frames = append(frames, Frame{
				Command: s.RS == gpio.Low,
				Value:   s.Value,
				Settle:  s.Idle,
				Strobes: []Strobe{s},
			})
		}
	case lcd.Bus4Bit:
		if len(strobes)%2 != 0 {
			return nil, fmt.Errorf("odd number of nibbles: %d", len(strobes))
		}
		for i := 0; i < len(strobes); i += 2 {
			high, low := strobes[i], strobes[i+1]
			if high.RS != low.RS {
				return nil, fmt.Errorf("register select changed within byte %d", i/2)
			}
			frames = append(frames, Frame{
				Command: high.RS == gpio.Low,
				Value:   high.Value<<4 | low.Value&0x0f,
				Settle:  high.Idle,
				Strobes: []Strobe{high, low},
			})
		}
	default:
		return nil, fmt.Errorf("unsupported bus width %d", int(bus))
	}
	return frames, nil
}

// Frames decodes everything recorded so far.
func (r *Recorder) Frames(bus lcd.BusWidth) ([]Frame, error) {
	return Frames(Strobes(r.Events()), bus)
}

// Commands returns the values of the command frames, in order.
func Commands(frames []Frame) []byte {
	return values(frames, true)
}

// Data returns the values of the character frames, in order.
func Data(frames []Frame) []byte {
	return values(frames, false)
}

func values(frames []Frame, command bool) []byte {
	var v []byte
	for _, f := range frames {
		if f.Command == command {
			v = append(v, f.Value)
		}
	}
	return v
}
