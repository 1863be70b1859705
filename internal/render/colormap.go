package render

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Colormap maps a normalised value in [0, 1] to a colour.
type Colormap func(v float64) gg.RGBA

var plasmaStops = []gg.RGBA{
	gg.Hex("#0d0887"),
	gg.Hex("#5302a3"),
	gg.Hex("#8b0aa5"),
	gg.Hex("#b83289"),
	gg.Hex("#db5c68"),
	gg.Hex("#f48849"),
	gg.Hex("#febd2a"),
	gg.Hex("#f0f921"),
}

// Plasma interpolates a perceptually ordered dark-blue to yellow ramp.
func Plasma(v float64) gg.RGBA {
	return ramp(plasmaStops, v)
}

// Grey runs from black to white.
func Grey(v float64) gg.RGBA {
	return ramp([]gg.RGBA{gg.RGB(0, 0, 0), gg.RGB(1, 1, 1)}, v)
}

func ramp(stops []gg.RGBA, v float64) gg.RGBA {
	v = clamp01(v)
	pos := v * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].Lerp(stops[i+1], pos-float64(i))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Normalize maps [vmin, vmax] onto [0, 1], clamping outside.
func Normalize(v, vmin, vmax float64) float64 {
	return clamp01((v - vmin) / (vmax - vmin))
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}
