//go:build pi

package board

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/callebjorkell/charlcd/internal/config"
	"github.com/callebjorkell/charlcd/lcd"
)

// Open initializes periph and looks up every configured pin in the GPIO
// registry.
func Open(p config.Pins) (lcd.Pins, error) {
	if _, err := host.Init(); err != nil {
		return lcd.Pins{}, errors.Wrap(err, "unable to initialize periph")
	}
	log.Infoln("Resolving LCD pins")
	return resolve(p, byName)
}

func byName(name string) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.Errorf("unknown pin %q", name)
	}
	return p, nil
}
