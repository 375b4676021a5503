package engine

import (
	"math"

	"fractal/misc"
)

// inSetColor is the fixed sentinel for points that never escape. It is
// the same for every palette.
var inSetColor = [4]byte{0, 0, 0, 255}

// Colorize maps one iteration result to an RGBA color.
//
// Non-escaped points are always opaque black. Escaped points walk an
// HSV hue ramp that repeats every palette.Length iterations and is
// rotated by palette.Hue degrees; saturation and value stay at 1. When
// smooth is true the continuous escape value drives the ramp instead
// of the integer count, which removes banding because the hue is
// continuous in it.
//
// Colorize assumes palette.Length > 0; Generate validates that before
// any pixel work starts.
func Colorize(result Result, palette Palette, smooth bool) [4]byte {
	if !result.Escaped {
		return inSetColor
	}

	v := float64(result.Iterations)
	if smooth {
		v = result.Smooth
	}

	// Reducing v modulo the period first keeps the ramp exactly
	// periodic: v and v+Length land on the same hue bit-for-bit.
	length := float64(palette.Length)
	hue := palette.Hue + math.Mod(v, length)*(360/length)

	r, g, b := misc.HSVToRGB(hue, 1, 1)
	return [4]byte{r, g, b, 255}
}
