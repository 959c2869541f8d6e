package lcd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// BusWidth is the number of data lines wired between the host and the display.
type BusWidth int

const (
	Bus4Bit BusWidth = 4
	Bus8Bit BusWidth = 8
)

func (b BusWidth) String() string {
	switch b {
	case Bus4Bit:
		return "4-bit"
	case Bus8Bit:
		return "8-bit"
	}
	return "N/A"
}

// Font selects the character matrix of the display.
type Font int

const (
	Font5x7 Font = iota + 1
	Font5x10
)

func (f Font) String() string {
	switch f {
	case Font5x7:
		return "5x7"
	case Font5x10:
		return "5x10"
	}
	return "N/A"
}

// ParseFont accepts "5x7" or "5x10".
func ParseFont(s string) (Font, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "5x7", "5x8":
		return Font5x7, nil
	case "5x10", "5x11":
		return Font5x10, nil
	}
	return 0, fmt.Errorf("unknown font %q", s)
}

// Lines is the number of display lines the controller drives.
type Lines int

const (
	OneLine  Lines = 1
	TwoLines Lines = 2
)

func (l Lines) String() string {
	switch l {
	case OneLine:
		return "1 line"
	case TwoLines:
		return "2 lines"
	}
	return "N/A"
}

// Config is the display mode. It is fixed for the lifetime of a Driver.
type Config struct {
	Bus   BusWidth
	Font  Font
	Lines Lines
}

func (c Config) String() string {
	return fmt.Sprintf("%v, %v, %v font", c.Bus, c.Lines, c.Font)
}

// Validate reports whether every field holds a known value.
func (c Config) Validate() error {
	if c.Bus != Bus4Bit && c.Bus != Bus8Bit {
		return errors.Wrapf(ErrConfig, "bus width %d", int(c.Bus))
	}
	if c.Font != Font5x7 && c.Font != Font5x10 {
		return errors.Wrapf(ErrConfig, "font %d", int(c.Font))
	}
	if c.Lines != OneLine && c.Lines != TwoLines {
		return errors.Wrapf(ErrConfig, "line count %d", int(c.Lines))
	}
	return nil
}

// FunctionSet returns the function set command selected by the configuration.
func (c Config) FunctionSet() byte {
	cmd := functionSet
	if c.Bus == Bus8Bit {
		cmd |= functionSet8Bit
	}
	if c.Lines == TwoLines {
		cmd |= functionSet2Line
	}
	if c.Font == Font5x10 {
		cmd |= functionSet5x10
	}
	return cmd
}
