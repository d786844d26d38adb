package ui

import "fmt"

type Color struct {
	R, G, B, A uint8
}

var (
	ColorClear         = Color{}
	ColorBlack         = Color{0x00, 0x00, 0x00, 0xFF}
	ColorWhite         = Color{0xFF, 0xFF, 0xFF, 0xFF}
	ColorVividCerulean = Color{0x00, 0xAA, 0xFF, 0xFF}
)

func (c Color) IsClear() bool {
	return c.A == 0
}

// Hex returns the color in the #RRGGBB or #RRGGBBAA form swaybar accepts.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
