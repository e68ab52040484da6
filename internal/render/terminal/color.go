package terminal

import colorful "github.com/lucasb-eyer/go-colorful"

// blend mixes color toward bg by t in Lab space. Colors that are not hex
// values (ANSI indexes, names) are returned unchanged.
func blend(color, bg string, t float64) string {
	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return color
	}
	return c.BlendLab(b, t).Clamped().Hex()
}
