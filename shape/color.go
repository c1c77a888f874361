package shape

import (
	"fmt"
	"image/color"
	"math"
)

// HSLA is a color in hue/saturation/lightness space with an alpha channel.
// Hue is in degrees; the remaining channels are in the unit interval.
type HSLA struct {
	H, S, L, A float32
}

// White is the default color assigned to every basic shape.
var White = HSLA{H: 360, S: 1, L: 1, A: 1}

// Transparent is the default color of composite and collection nodes.
// Its zero alpha means the node does not recolor its children.
var Transparent = HSLA{}

// FromHex converts an RGB triple to HSLA with full opacity.
func FromHex(r, g, b uint8) HSLA {
	rf := float32(r) / 255
	gf := float32(g) / 255
	bf := float32(b) / 255

	maxc := max(rf, gf, bf)
	minc := min(rf, gf, bf)
	l := (maxc + minc) / 2

	if maxc == minc {
		return HSLA{H: 0, S: 0, L: l, A: 1}
	}

	d := maxc - minc

	var s float32
	if l > 0.5 {
		s = d / (2 - maxc - minc)
	} else {
		s = d / (maxc + minc)
	}

	var h float32

	switch maxc {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}

	return HSLA{H: h * 60, S: s, L: l, A: 1}
}

// ParseHex converts a "#RGB" or "#RRGGBB" literal body (without the leading
// '#') to an RGB triple. The shorthand duplicates each nibble.
func ParseHex(s string) ([3]uint8, error) {
	var r, g, b uint8

	switch len(s) {
	case 3:
		_, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return [3]uint8{}, err
		}

		r, g, b = r*17, g*17, b*17
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			return [3]uint8{}, err
		}
	default:
		return [3]uint8{}, fmt.Errorf("hex color must have 3 or 6 digits: %q", s)
	}

	return [3]uint8{r, g, b}, nil
}

// NRGBA converts the color to premultiplied-free 8-bit RGBA.
func (c HSLA) NRGBA() color.NRGBA {
	h := float32(math.Mod(float64(c.H), 360))
	if h < 0 {
		h += 360
	}

	s := clamp01(c.S)
	l := clamp01(c.L)
	a := clamp01(c.A)

	chroma := (1 - abs32(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - abs32(float32(math.Mod(float64(hp), 2))-1))

	var rf, gf, bf float32

	switch {
	case hp < 1:
		rf, gf, bf = chroma, x, 0
	case hp < 2:
		rf, gf, bf = x, chroma, 0
	case hp < 3:
		rf, gf, bf = 0, chroma, x
	case hp < 4:
		rf, gf, bf = 0, x, chroma
	case hp < 5:
		rf, gf, bf = x, 0, chroma
	default:
		rf, gf, bf = chroma, 0, x
	}

	m := l - chroma/2

	return color.NRGBA{
		R: uint8((rf + m) * 255),
		G: uint8((gf + m) * 255),
		B: uint8((bf + m) * 255),
		A: uint8(a * 255),
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}
