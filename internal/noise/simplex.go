package noise

import "math"

// Skew factors for the 2D simplex grid.
var (
	f2 = (math.Sqrt(3) - 1) / 2
	g2 = (3 - math.Sqrt(3)) / 6
)

// grad2 holds the 12 gradient directions of the reference implementation;
// the z component is unused in 2D but kept so indexing matches.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// Simplex2D evaluates 2D simplex noise at (x, y) using the given permutation
// table. The result is nominally in [-1, 1] and is a pure function of its
// inputs.
func Simplex2D(x, y float64, perm *Table) float64 {
	// Skew into simplex grid space to find the containing cell.
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Offsets of the middle corner depend on which triangle we are in.
	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + g2
	y1 := y0 - j1 + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	gi0 := int(perm[ii+int(perm[jj])]) % 12
	gi1 := int(perm[ii+int(i1)+int(perm[jj+int(j1)])]) % 12
	gi2 := int(perm[ii+1+int(perm[jj+1])]) % 12

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad2[gi0], x0, y0)
	}
	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad2[gi1], x1, y1)
	}
	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad2[gi2], x2, y2)
	}

	// 70 scales the summed contributions to roughly [-1, 1].
	return 70 * (n0 + n1 + n2)
}

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}
