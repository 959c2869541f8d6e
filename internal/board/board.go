// Package board turns configured pin names into GPIO handles for the lcd
// driver. Built with the pi tag it uses the periph.io host drivers, otherwise
// every pin is a dummy that only logs what it is told.
package board

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"

	"github.com/callebjorkell/charlcd/internal/config"
	"github.com/callebjorkell/charlcd/lcd"
)

type lookupFunc func(name string) (gpio.PinOut, error)

func resolve(p config.Pins, lookup lookupFunc) (lcd.Pins, error) {
	var (
		pins lcd.Pins
		err  error
	)
	if pins.RS, err = lookup(p.RS); err != nil {
		return lcd.Pins{}, errors.Wrap(err, "rs")
	}
	if p.RW != "" {
		if pins.RW, err = lookup(p.RW); err != nil {
			return lcd.Pins{}, errors.Wrap(err, "rw")
		}
	}
	if pins.Enable, err = lookup(p.Enable); err != nil {
		return lcd.Pins{}, errors.Wrap(err, "enable")
	}
	for i, name := range p.Data {
		d, err := lookup(name)
		if err != nil {
			return lcd.Pins{}, errors.Wrapf(err, "data %d", i)
		}
		pins.Data = append(pins.Data, d)
	}
	return pins, nil
}
