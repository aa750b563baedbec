package export

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// wireColor returns a stable color for the i-th wire. Hues advance by 137.5
// degrees per wire, so neighbouring indices land far apart on the wheel.
func wireColor(i int) colorful.Color {
	hue := math.Mod(float64(i)*137.5+210, 360)
	return colorful.Hsv(hue, 0.70, 0.75)
}
