//go:build !pi

package board

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/callebjorkell/charlcd/internal/config"
	"github.com/callebjorkell/charlcd/lcd"
)

// Open returns dummy pins for every configured name.
func Open(p config.Pins) (lcd.Pins, error) {
	log.Infoln("Using dummy LCD pins")
	return resolve(p, dummy)
}

func dummy(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, errors.New("pin name is empty")
	}
	return &dummyPin{name: name}, nil
}

type dummyPin struct {
	name string
	l    gpio.Level
}

func (d *dummyPin) String() string {
	return d.name
}

func (d *dummyPin) Halt() error {
	return nil
}

func (d *dummyPin) Name() string {
	return d.name
}

func (d *dummyPin) Number() int {
	return -1
}

func (d *dummyPin) Function() string {
	return "Out"
}

func (d *dummyPin) Out(l gpio.Level) error {
	if l != d.l {
		log.Tracef("%s: %v", d.name, l)
	}
	d.l = l
	return nil
}

func (d *dummyPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.Errorf("%s: PWM is not supported", d.name)
}

var _ gpio.PinOut = &dummyPin{}
