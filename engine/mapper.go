package engine

// PointAt converts the pixel (px, py) on a width x height image to its
// point on the complex plane.
//
//   - Pixels are indexed from the top left so the pixel is shifted by
//     half the width and half the height to center the image on the
//     view's center point.
//   - The same scale applies to both axes, so the aspect ratio of the
//     plane region always matches the aspect ratio of the image.
//   - The imaginary axis grows downward together with the pixel rows;
//     callers wanting the mathematical orientation flip the sign of
//     CenterY, which leaves both supported sets visually unchanged.
//
// Pure and deterministic: identical inputs produce bit-identical
// outputs.
func PointAt(px, py, width, height int, view View) (float64, float64) {
	x := view.CenterX + (float64(px)-float64(width)/2)*view.Scale
	y := view.CenterY + (float64(py)-float64(height)/2)*view.Scale
	return x, y
}
