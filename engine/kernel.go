package engine

import "math"

// periodWindow is how many iterations pass between snapshots of z for
// cycle detection. Small enough to catch short orbits quickly, large
// enough that the extra comparisons stay cheap.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
const periodWindow = 20

// Iterate runs the escape-time recurrence z <- z^2 + c for the point
// (x, y) mapped from the image. For Mandelbrot z starts at the origin
// and c is the point; for Julia z starts at the point and c is the
// fixed constant in params.
//
// Escaped results carry the iteration at which |z|^2 first exceeded
// escapeRadiusSq, plus the continuous escape value
// n + 1 - log(log|z|)/log 2 in Smooth. Points that never escape within
// maxIter, orbits that settle into a cycle, and recurrences that
// degenerate to NaN or Inf all report Escaped=false with Iterations
// set to maxIter.
//
// Iterate is pure and safe to call concurrently.
func Iterate(x, y float64, params Params, maxIter int, escapeRadiusSq float64) Result {
	var zx, zy float64
	cx, cy := x, y
	if params.Set == Julia {
		zx, zy = x, y
		cx, cy = params.CX, params.CY
	}

	zx2, zy2 := zx*zx, zy*zy
	n := 0
	period := 0
	oldX, oldY := zx, zy
	for zx2+zy2 <= escapeRadiusSq && n < maxIter {
		zy = 2*zx*zy + cy
		zx = zx2 - zy2 + cx
		zx2 = zx * zx
		zy2 = zy * zy
		n++

		// A repeated z means the orbit is cyclic and will never
		// escape, so the point is in the set.
		if zx == oldX && zy == oldY {
			return Result{Escaped: false, Iterations: maxIter}
		}
		period++
		if period > periodWindow {
			period = 0
			oldX, oldY = zx, zy
		}
	}

	sum := zx2 + zy2
	if n >= maxIter || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return Result{Escaped: false, Iterations: maxIter}
	}

	// Continuous (smooth) escape value.
	// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
	smooth := float64(n) + 1 - math.Log(math.Log(math.Sqrt(sum)))/math.Ln2
	if math.IsNaN(smooth) || math.IsInf(smooth, 0) {
		smooth = float64(n)
	}

	return Result{Escaped: true, Iterations: n, Smooth: smooth}
}
