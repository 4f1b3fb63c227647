package seasonal

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"
)

func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Cannot parse style %q as float: %s", s, err.Error())
		return 0.5
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets the alpha of c to a. TODO: handle case if c has alpha.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":       color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":     color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":      color.RGBA{0x00, 0x00, 0xff, 0xff},
	"royalblue": color.RGBA{0x41, 0x69, 0xe1, 0xff},
	"steelblue": color.RGBA{0x46, 0x82, 0xb4, 0xff},
	"cyan":      color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta":   color.RGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":    color.RGBA{0xff, 0xff, 0x00, 0xff},
	"white":     color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":    color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":    color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":      color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":    color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":    color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":     color.RGBA{0x00, 0x00, 0x00, 0xff},
}

func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.RGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.RGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Color2Hex formats c as #rrggbb, dropping alpha.
func Color2Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
