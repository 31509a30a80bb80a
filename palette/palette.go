// Package palette converts scalar fields and region indices to colours.
//
// Hue, saturation and value are all expressed in [0,1]; a hue of 1 is a full
// turn. FromNormalized maps a normalized scalar onto the red→blue part of the
// hue circle, Cycle hands out well separated colours for successive regions.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidArgument is returned by NewHSV for a channel outside [0,1].
var ErrInvalidArgument = errors.New("palette: invalid argument")

// blueHue is the hue reached by FromNormalized(1): 240°.
const blueHue = 240.0 / 360.0

// goldenStep is the hue increment between consecutive Cycle colours.
const goldenStep = 0.618033988749895

// HSV is a colour in hue/saturation/value space.
type HSV struct {
	H, S, V float64
}

// RGB is a colour with channels in [0,1]. It shares its layout with
// colorful.Color, so the two convert freely.
type RGB colorful.Color

// NewHSV validates and returns an HSV colour.
func NewHSV(h, s, v float64) (HSV, error) {
	for _, c := range [...]struct {
		name string
		x    float64
	}{{"hue", h}, {"saturation", s}, {"value", v}} {
		if !(c.x >= 0 && c.x <= 1) {
			return HSV{}, fmt.Errorf("palette: NewHSV: %s %v outside [0,1]: %w", c.name, c.x, ErrInvalidArgument)
		}
	}
	return HSV{H: h, S: s, V: v}, nil
}

// RGB converts c. A hue of 1 wraps to 0.
func (c HSV) RGB() RGB {
	deg := math.Mod(c.H*360, 360)
	if deg < 0 {
		deg += 360
	}
	return RGB(colorful.Hsv(deg, c.S, c.V))
}

// HSV converts c back to hue/saturation/value. Greys have hue 0.
func (c RGB) HSV() HSV {
	h, s, v := colorful.Color(c).Hsv()
	return HSV{H: h / 360, S: s, V: v}
}

// NRGBA returns c, clamped to [0,1], as an opaque 8-bit colour.
func (c RGB) NRGBA() color.NRGBA {
	r, g, b := colorful.Color(c).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// FromNormalized maps v ∈ [0,1] to HSV(v·240°, 1, 1): 0 is red, 1 is blue.
// v is clamped to [0,1]; NaN maps to 0.
func FromNormalized(v float64) RGB {
	if !(v >= 0) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return HSV{H: v * blueHue, S: 1, V: 1}.RGB()
}

// Cycle returns the colour of region i. Hues advance by the golden ratio
// conjugate, so any run of consecutive regions stays well separated.
// Negative indices are folded onto their absolute value.
func Cycle(i int) RGB {
	if i < 0 {
		i = -i
	}
	_, h := math.Modf(float64(i) * goldenStep)
	return HSV{H: h, S: 0.65, V: 0.95}.RGB()
}
