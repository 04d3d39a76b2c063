package style

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/loom/terminal"
)

// toColorful converts a terminal RGB to a colorful color
func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts back, clamping to displayable range
func fromColorful(c colorful.Color) terminal.RGB {
	c = c.Clamped()
	return terminal.RGB{
		R: uint8(c.R*255.0 + 0.5),
		G: uint8(c.G*255.0 + 0.5),
		B: uint8(c.B*255.0 + 0.5),
	}
}

// Darken moves the color toward black by amount (0.0-1.0) in Lab space
func Darken(c terminal.RGB, amount float64) terminal.RGB {
	return Blend(c, terminal.RGB{}, amount)
}

// Lighten moves the color toward white by amount (0.0-1.0) in Lab space
func Lighten(c terminal.RGB, amount float64) terminal.RGB {
	return Blend(c, terminal.RGB{R: 255, G: 255, B: 255}, amount)
}

// Blend mixes two colors perceptually, t=0 yields a, t=1 yields b
func Blend(a, b terminal.RGB, t float64) terminal.RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}
