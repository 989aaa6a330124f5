package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBaseColor seeds every palette when the caller does not supply
// a base color, and is the fallback for malformed color input.
const DefaultBaseColor = "#2b6cb0"

// Blend factors for the palette anchors: the light anchor leans hard
// toward white, the dark anchor moderately toward black, so shades stay
// recognizably the base hue.
const (
	lightBlend = 0.65
	darkBlend  = 0.35
)

// RGB is a color triple with 8-bit channels.
type RGB struct {
	R, G, B int
}

// Hex renders the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the relative luminance used to verify shade ordering.
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
)

// ParseHex parses #rgb or #rrggbb into an RGB triple. Malformed input
// falls back to the default base color rather than failing, so a bad
// color choice can never break a report.
func ParseHex(hexColor string) RGB {
	h := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return ParseHex(DefaultBaseColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ParseHex(DefaultBaseColor)
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}
}

// blend interpolates between two colors; t=0 returns a, t=1 returns b.
// Channels truncate toward zero to keep the derivation bit-identical
// across invocations.
func blend(a, b RGB, t float64) RGB {
	return RGB{
		R: int(float64(a.R) + float64(b.R-a.R)*t),
		G: int(float64(a.G) + float64(b.G-a.G)*t),
		B: int(float64(a.B) + float64(b.B-a.B)*t),
	}
}

// Shades derives n hex shades of one base color by interpolating from a
// light tint to a darker tone of the same hue. Deterministic and pure:
// the same (base, n) always yields the same list. n==1 returns the base
// unchanged; n<1 returns an empty list.
func Shades(base RGB, n int) []string {
	if n < 1 {
		return []string{}
	}
	if n == 1 {
		return []string{base.Hex()}
	}

	lightAnchor := blend(base, white, lightBlend)
	darkAnchor := blend(base, black, darkBlend)

	shades := make([]string, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		shades[i] = blend(lightAnchor, darkAnchor, t).Hex()
	}
	return shades
}

// ShadesHex is Shades with a hex base color, applying the malformed-
// input fallback of ParseHex.
func ShadesHex(baseHex string, n int) []string {
	return Shades(ParseHex(baseHex), n)
}
