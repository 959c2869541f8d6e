package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callebjorkell/charlcd/lcd"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
display:
  bus: 8
  lines: 1
  font: 5x10
pins:
  rs: GPIO2
  rw: GPIO3
  enable: GPIO4
  data: [GPIO5, GPIO6, GPIO7, GPIO8, GPIO9, GPIO10, GPIO11, GPIO12]
`))
	require.NoError(t, err)

	assert.Equal(t, "GPIO2", c.Pins.RS)
	assert.Equal(t, "GPIO3", c.Pins.RW)
	assert.Equal(t, "GPIO4", c.Pins.Enable)
	assert.Len(t, c.Pins.Data, 8)
	assert.Equal(t, lcd.Config{Bus: lcd.Bus8Bit, Font: lcd.Font5x10, Lines: lcd.OneLine}, c.LCD())
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(``))
	require.NoError(t, err)

	assert.Equal(t, Pins{
		RS:     "GPIO4",
		Enable: "GPIO17",
		Data:   []string{"GPIO25", "GPIO22", "GPIO23", "GPIO24"},
	}, c.Pins)
	assert.Equal(t, lcd.Config{Bus: lcd.Bus4Bit, Font: lcd.Font5x7, Lines: lcd.TwoLines}, c.LCD())
}

func TestParse_BusFromDataPins(t *testing.T) {
	c, err := Parse([]byte(`
pins:
  rs: GPIO2
  enable: GPIO4
  data: [GPIO5, GPIO6, GPIO7, GPIO8, GPIO9, GPIO10, GPIO11, GPIO12]
`))
	require.NoError(t, err)
	assert.Equal(t, 8, c.Display.Bus)
}

func TestParse_Invalid(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{"not yaml", "display: [nope"},
		{"bus width", "display: {bus: 6}\npins: {rs: A, enable: B, data: [C, D, E, F, G, H]}"},
		{"line count", "display: {lines: 4}"},
		{"font", "display: {font: 8x8}"},
		{"missing rs", "pins: {enable: B, data: [C, D, E, F]}"},
		{"missing enable", "pins: {rs: A, data: [C, D, E, F]}"},
		{"data count", "display: {bus: 4}\npins: {rs: A, enable: B, data: [C, D, E, F, G, H, I, J]}"},
		{"empty data name", "pins: {rs: A, enable: B, data: [C, '', E, F]}"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse([]byte(tc.content))
			assert.Nil(t, c)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  lines: 1\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Display.Lines)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
