package lcdtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"

	"github.com/callebjorkell/charlcd/lcd"
)

func TestStrobes(t *testing.T) {
	r := &Recorder{}
	p := r.Pins(lcd.Bus4Bit)

	r.Sleep(3 * time.Millisecond)
	_ = p.RS.Out(gpio.High)
	_ = p.Data[0].Out(gpio.High)
	_ = p.Data[3].Out(gpio.High)
	_ = p.Enable.Out(gpio.High)
	r.Sleep(time.Millisecond)
	r.Sleep(time.Millisecond)
	_ = p.Enable.Out(gpio.Low)
	_ = p.Data[0].Out(gpio.Low)
	_ = p.Enable.Out(gpio.High)
	_ = p.Enable.Out(gpio.Low)

	s := Strobes(r.Events())
	require.Len(t, s, 2)
	assert.Equal(t, Strobe{RS: gpio.High, Value: 0x09, Hold: 2 * time.Millisecond, Idle: 3 * time.Millisecond}, s[0])
	assert.Equal(t, Strobe{RS: gpio.High, Value: 0x08}, s[1])

	f, err := Frames(s, lcd.Bus4Bit)
	require.NoError(t, err)
	require.Len(t, f, 1)
	assert.False(t, f[0].Command)
	assert.Equal(t, byte(0x98), f[0].Value)
	assert.Equal(t, 3*time.Millisecond, f[0].Settle)
	assert.Equal(t, "data 0x98", f[0].String())
}

func TestFrames_Errors(t *testing.T) {
	_, err := Frames([]Strobe{{}}, lcd.Bus4Bit)
	assert.Error(t, err)

	_, err = Frames([]Strobe{{RS: gpio.Low}, {RS: gpio.High}}, lcd.Bus4Bit)
	assert.Error(t, err)

	_, err = Frames(nil, lcd.BusWidth(2))
	assert.Error(t, err)
}

func TestCommandsAndData(t *testing.T) {
	frames := []Frame{
		{Command: true, Value: 0x01},
		{Value: 'a'},
		{Command: true, Value: 0x02},
		{Value: 'b'},
	}
	assert.Equal(t, []byte{0x01, 0x02}, Commands(frames))
	assert.Equal(t, []byte("ab"), Data(frames))
}

func TestPin(t *testing.T) {
	r := &Recorder{}
	p := r.Pin("X")

	assert.NoError(t, p.Out(gpio.High))
	assert.Equal(t, gpio.High, p.L)
	assert.Error(t, p.PWM(gpio.DutyHalf, 0))
	assert.NoError(t, p.Halt())
	assert.Equal(t, []Event{{Pin: "X", Level: gpio.High}}, r.Events())
	assert.Equal(t, "X=High", r.Events()[0].String())

	r.Reset()
	assert.Empty(t, r.Events())
}
