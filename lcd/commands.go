package lcd

import "time"

// HD44780 instruction bytes.
const (
	ClearDisplay byte = 0x01
	ReturnHome   byte = 0x02

	// Entry mode: the cursor moves left or right after each character.
	EntryModeLeft  byte = 0x04
	EntryModeRight byte = 0x06

	DisplayOff           byte = 0x08
	DisplayOnCursorOff   byte = 0x0C
	DisplayOnCursorLine  byte = 0x0E
	DisplayOnCursorBlink byte = 0x0F

	ShiftCursorLeft   byte = 0x10
	ShiftCursorRight  byte = 0x14
	ShiftDisplayLeft  byte = 0x18
	ShiftDisplayRight byte = 0x1C

	SetCGRAMAddress byte = 0x40
	SetDDRAMAddress byte = 0x80
)

const (
	functionSet      byte = 0x20
	functionSet8Bit  byte = 0x10
	functionSet2Line byte = 0x08
	functionSet5x10  byte = 0x04

	// Sent as commands before the function set to leave the 8-bit power on
	// default and enter 4-bit mode.
	force4BitFirst  byte = 0x33
	force4BitSecond byte = 0x32
)

// Minimum delays of the bus protocol. Longer is always safe.
const (
	PowerOnDelay = 50 * time.Millisecond
	SettleDelay  = 5 * time.Millisecond
	PulseDelay   = 1 * time.Millisecond
)
