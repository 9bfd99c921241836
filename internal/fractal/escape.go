package fractal

const (
	// escapeRadius2 is |z|² at which an orbit counts as escaped.
	escapeRadius2 = 4.0
	// planeSpan is the width of the complex plane shown across the grid.
	planeSpan = 4.0
)

// Escape returns how many iterations of z ← z² + c, starting at z = 0, run
// before |z|² reaches 4. The result is capped at max; a return value equal
// to max means the point did not escape.
func Escape(re, im float64, max int) int {
	x, y := 0.0, 0.0
	iter := 0
	for iter < max && x*x+y*y < escapeRadius2 {
		x, y = x*x-y*y+re, 2*x*y+im
		iter++
	}
	return iter
}

// PlanePoint maps cell (x, y) of a w×h grid onto the complex plane. Both
// axes are scaled by the width.
func PlanePoint(x, y, w, h int) (re, im float64) {
	fw, fh := float64(w), float64(h)
	re = (float64(x) - fw*0.5) * planeSpan / fw
	im = (float64(y) - fh*0.5) * planeSpan / fw
	return re, im
}
