package terrain

import "math"

// Continental mask shape. The radial falloff sinks elevation toward the map
// border and the latitude band biases land toward mid-latitudes; the combined
// mask is sharpened so coastlines read as edges rather than gradients.
const (
	maskRadialInner  = 0.35
	maskRadialOuter  = 1.0
	maskLatInner     = 0.55
	maskLatOuter     = 1.0
	maskSharpenPower = 1.5
)

// smoothstep is the clamped cubic Hermite 3t^2 - 2t^3 between edge0 and edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge1 == edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// continentalMask weights a normalized grid position (nx, ny in [0,1]) by how
// continental it should be: 1 at the map center, falling to 0 toward the rim
// and the poles.
func continentalMask(nx, ny float64) float64 {
	cx := 2*nx - 1
	cy := 2*ny - 1
	d := math.Sqrt(cx*cx + cy*cy)

	radial := 1 - smoothstep(maskRadialInner, maskRadialOuter, d)
	lat := 1 - smoothstep(maskLatInner, maskLatOuter, math.Abs(cy))

	return math.Pow(radial*lat, maskSharpenPower)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
