package lcd

import (
	"fmt"
	"strings"
)

// CursorState selects how the cursor is shown while the display is on.
type CursorState int

const (
	CursorOff CursorState = iota
	CursorBlink
	CursorSteady
)

func (c CursorState) String() string {
	switch c {
	case CursorOff:
		return "off"
	case CursorBlink:
		return "blink"
	case CursorSteady:
		return "steady"
	}
	return "N/A"
}

// ParseCursorState is the inverse of CursorState.String.
func ParseCursorState(s string) (CursorState, error) {
	switch strings.ToLower(s) {
	case "off":
		return CursorOff, nil
	case "blink":
		return CursorBlink, nil
	case "steady":
		return CursorSteady, nil
	}
	return 0, fmt.Errorf("unknown cursor state %q", s)
}
