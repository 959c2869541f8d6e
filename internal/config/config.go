// Package config reads the display description from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/callebjorkell/charlcd/lcd"
)

const (
	defaultLines = 2
	defaultFont  = "5x7"
)

// Default wiring on a Raspberry Pi header, D4-D7 on a 4-bit bus.
var (
	defaultRS     = "GPIO4"
	defaultEnable = "GPIO17"
	defaultData   = []string{"GPIO25", "GPIO22", "GPIO23", "GPIO24"}
)

type Config struct {
	Display struct {
		Bus   int    `yaml:"bus"`
		Lines int    `yaml:"lines"`
		Font  string `yaml:"font"`
	} `yaml:"display"`
	Pins Pins `yaml:"pins"`
}

// Pins names the GPIO lines the way the platform pin registry knows them.
// RW may be left empty when the display has R/W tied to ground.
type Pins struct {
	RS     string   `yaml:"rs"`
	RW     string   `yaml:"rw"`
	Enable string   `yaml:"enable"`
	Data   []string `yaml:"data"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read configuration")
	}
	return Parse(content)
}

// Parse decodes content, fills in defaults and validates the result.
func Parse(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse configuration")
	}

	if c.Pins.RS == "" && c.Pins.Enable == "" && len(c.Pins.Data) == 0 {
		c.Pins.RS = defaultRS
		c.Pins.Enable = defaultEnable
		c.Pins.Data = append([]string(nil), defaultData...)
	}
	if c.Display.Bus == 0 {
		c.Display.Bus = len(c.Pins.Data)
	}
	if c.Display.Lines == 0 {
		c.Display.Lines = defaultLines
	}
	if c.Display.Font == "" {
		c.Display.Font = defaultFont
	}

	if c.Display.Bus != 4 && c.Display.Bus != 8 {
		return nil, fmt.Errorf("bus width must be 4 or 8, not %d", c.Display.Bus)
	}
	if c.Display.Lines != 1 && c.Display.Lines != 2 {
		return nil, fmt.Errorf("line count must be 1 or 2, not %d", c.Display.Lines)
	}
	if _, err := lcd.ParseFont(c.Display.Font); err != nil {
		return nil, err
	}
	if c.Pins.RS == "" {
		return nil, fmt.Errorf("rs pin is missing")
	}
	if c.Pins.Enable == "" {
		return nil, fmt.Errorf("enable pin is missing")
	}
	if len(c.Pins.Data) != c.Display.Bus {
		return nil, fmt.Errorf("%d data pins given for a %d-bit bus", len(c.Pins.Data), c.Display.Bus)
	}
	for i, name := range c.Pins.Data {
		if name == "" {
			return nil, fmt.Errorf("name of data pin must be specified for entry %d", i)
		}
	}

	return c, nil
}

// LCD converts the display section into a driver configuration.
func (c Config) LCD() lcd.Config {
	font, _ := lcd.ParseFont(c.Display.Font)
	return lcd.Config{
		Bus:   lcd.BusWidth(c.Display.Bus),
		Font:  font,
		Lines: lcd.Lines(c.Display.Lines),
	}
}
